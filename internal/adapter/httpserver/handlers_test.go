package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyready/question-engine/internal/adapter/httpserver"
	"github.com/flyready/question-engine/internal/airline"
	"github.com/flyready/question-engine/internal/config"
	"github.com/flyready/question-engine/internal/domain"
	"github.com/flyready/question-engine/internal/usecase"
)

const sampleEssay = "Q1. 지원동기를 작성하시오.\n" +
	"저는 고객을 돕는 일에서 보람을 느껴 승무원을 꿈꾸게 되었습니다. " +
	"카페에서 일하며 고객의 불만을 해결하기 위해 노력했습니다."

type memRepo struct{ recs []domain.SetRecord }

func (r *memRepo) Insert(_ context.Context, rec domain.SetRecord) (string, error) {
	rec.ID = "id-1"
	r.recs = append(r.recs, rec)
	return rec.ID, nil
}

func (r *memRepo) ListByEssayHash(_ context.Context, essayHash string, _ int) ([]domain.SetRecord, error) {
	var out []domain.SetRecord
	for _, rec := range r.recs {
		if rec.EssayHash == essayHash {
			out = append(out, rec)
		}
	}
	return out, nil
}

func newTestServer(t *testing.T) (*httpserver.Server, *memRepo) {
	t.Helper()
	cat, err := airline.LoadDefault("")
	require.NoError(t, err)
	repo := &memRepo{}
	gen := usecase.NewGenerateService(nil, nil, repo, cat)
	return httpserver.NewServer(config.Config{MaxBodyKB: 256}, gen, nil, nil), repo
}

func postQuestions(t *testing.T, srv *httpserver.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/questions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.QuestionsHandler()(rec, req)
	return rec
}

func TestQuestionsSuccess(t *testing.T) {
	t.Parallel()
	srv, repo := newTestServer(t)

	body, err := json.Marshal(map[string]any{"essay": sampleEssay, "airline": "제주항공", "version": 1})
	require.NoError(t, err)
	rec := postQuestions(t, srv, string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, slot := range []string{"q1", "q2", "q3", "q4", "q5"} {
		m, ok := resp[slot].(map[string]any)
		require.True(t, ok, slot)
		assert.NotEmpty(t, m["question"], slot)
		assert.NotEmpty(t, m["type"], slot)
	}
	assert.Len(t, resp["essay_hash"], 64)
	assert.Equal(t, "제주항공", resp["airline"])
	assert.Equal(t, "LCC", resp["airline_type"])
	assert.Equal(t, float64(1), resp["version"])
	assert.NotEmpty(t, resp["evidence"])
	assert.Len(t, repo.recs, 1)
}

func TestQuestionsInvalidJSON(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	rec := postQuestions(t, srv, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ARGUMENT")
}

func TestQuestionsValidation(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	rec := postQuestions(t, srv, `{"essay":"","airline":"제주항공","version":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "essay")

	rec = postQuestions(t, srv, `{"essay":"text","airline":"제주항공","version":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "version")
}

func TestQuestionsAcceptNegotiation(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/questions", strings.NewReader("{}"))
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	srv.QuestionsHandler()(rec, req)
	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
}

func TestQuestionsDeterministicAcrossCalls(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	body := `{"essay":` + mustJSON(sampleEssay) + `,"airline":"제주항공","version":2}`
	first := postQuestions(t, srv, body)
	second := postQuestions(t, srv, body)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b map[string]any
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.Equal(t, a["q2"], b["q2"])
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestHistoryValidation(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/questions/history", nil)
	rec := httptest.NewRecorder()
	srv.HistoryHandler()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/questions/history?essay_hash=XYZ", nil)
	rec = httptest.NewRecorder()
	srv.HistoryHandler()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryListsGenerations(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	body := `{"essay":` + mustJSON(sampleEssay) + `,"airline":"제주항공","version":1}`
	rec := postQuestions(t, srv, body)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	hash, _ := resp["essay_hash"].(string)
	require.Len(t, hash, 64)

	req := httptest.NewRequest(http.MethodGet, "/v1/questions/history?essay_hash="+hash, nil)
	hrec := httptest.NewRecorder()
	srv.HistoryHandler()(hrec, req)
	require.Equal(t, http.StatusOK, hrec.Code)

	var hist struct {
		Items []struct {
			EssayHash string    `json:"essay_hash"`
			Version   int       `json:"version"`
			CreatedAt time.Time `json:"created_at"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(hrec.Body.Bytes(), &hist))
	require.Len(t, hist.Items, 1)
	assert.Equal(t, hash, hist.Items[0].EssayHash)
	assert.Equal(t, 1, hist.Items[0].Version)
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.HealthzHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyz(t *testing.T) {
	t.Parallel()
	cat, err := airline.LoadDefault("")
	require.NoError(t, err)
	gen := usecase.NewGenerateService(nil, nil, &memRepo{}, cat)

	healthy := httpserver.NewServer(config.Config{}, gen,
		func(context.Context) error { return nil },
		func(context.Context) error { return nil })
	rec := httptest.NewRecorder()
	healthy.ReadyzHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	broken := httpserver.NewServer(config.Config{}, gen,
		func(context.Context) error { return errors.New("db down") },
		func(context.Context) error { return nil })
	rec = httptest.NewRecorder()
	broken.ReadyzHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "db down")
}
