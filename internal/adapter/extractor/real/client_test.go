package real

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyready/question-engine/internal/config"
	"github.com/flyready/question-engine/internal/domain"
)

func testItems() []domain.EssayItem {
	return []domain.EssayItem{
		{Index: 1, Prompt: "지원동기", Answer: "저는 고객을 돕고 싶습니다."},
		{Index: 2, Prompt: "협업 경험", Answer: "동료들과 함께 문제를 해결했습니다."},
	}
}

func chatBody(t *testing.T, content string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]any{"content": content}}},
	})
	require.NoError(t, err)
	return b
}

func newClient(baseURL string) *Client {
	return New(config.Config{
		AppEnv:           "test",
		ExtractorBaseURL: baseURL,
		ExtractorAPIKey:  "sk-test",
		ExtractorModel:   "gpt-4o-mini",
	})
}

func TestExtractSuccess(t *testing.T) {
	t.Parallel()
	payload := `{"records":[{"claim":"고객을 돕고 싶다","over_idealized_points":["고객을 돕고 싶습니다"]},{"claim":"함께 해결했다"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])
		_, _ = w.Write(chatBody(t, payload))
	}))
	defer srv.Close()

	recs, err := newClient(srv.URL).Extract(context.Background(), testItems(), "제주항공")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "고객을 돕고 싶다", recs[0].Claim)
	assert.Equal(t, []string{"고객을 돕고 싶습니다"}, recs[0].OverIdealizedPoints)
}

func TestExtractFencedContent(t *testing.T) {
	t.Parallel()
	payload := "```json\n{\"records\":[{\"claim\":\"a\"},{\"claim\":\"b\"}]}\n```"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(chatBody(t, payload))
	}))
	defer srv.Close()

	recs, err := newClient(srv.URL).Extract(context.Background(), testItems(), "제주항공")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].Claim)
}

func TestExtractRecordCountMismatch(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(chatBody(t, `{"records":[{"claim":"only one"}]}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Extract(context.Background(), testItems(), "제주항공")
	assert.ErrorIs(t, err, domain.ErrSchemaInvalid)
}

func TestExtractMalformedJSON(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(chatBody(t, `{not valid`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Extract(context.Background(), testItems(), "제주항공")
	assert.ErrorIs(t, err, domain.ErrSchemaInvalid)
}

func TestExtract4xxPermanent(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Extract(context.Background(), testItems(), "제주항공")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestExtract5xxRetried(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write(chatBody(t, `{"records":[{"claim":"a"},{"claim":"b"}]}`))
	}))
	defer srv.Close()

	recs, err := newClient(srv.URL).Extract(context.Background(), testItems(), "제주항공")
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestExtractNoItems(t *testing.T) {
	t.Parallel()
	recs, err := newClient("http://unused").Extract(context.Background(), nil, "제주항공")
	require.NoError(t, err)
	assert.Nil(t, recs)
}

func TestStripFences(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
}
