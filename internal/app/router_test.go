package app_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyready/question-engine/internal/adapter/httpserver"
	"github.com/flyready/question-engine/internal/airline"
	"github.com/flyready/question-engine/internal/app"
	"github.com/flyready/question-engine/internal/config"
	"github.com/flyready/question-engine/internal/usecase"
)

func TestParseOrigins(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"*"}, app.ParseOrigins(""))
	assert.Equal(t, []string{"*"}, app.ParseOrigins("*"))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, app.ParseOrigins(" https://a.example , https://b.example "))
	assert.Equal(t, []string{"*"}, app.ParseOrigins(" , "))
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	cat, err := airline.LoadDefault("")
	require.NoError(t, err)
	cfg := config.Config{RateLimitPerMin: 60, MaxBodyKB: 256, CORSAllowOrigins: "*"}
	gen := usecase.NewGenerateService(nil, nil, nil, cat)
	return app.BuildRouter(cfg, httpserver.NewServer(cfg, gen, nil, nil))
}

func TestRouterHealthz(t *testing.T) {
	t.Parallel()
	h := newRouter(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRouterMetrics(t *testing.T) {
	t.Parallel()
	h := newRouter(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterQuestionsWired(t *testing.T) {
	t.Parallel()
	h := newRouter(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/questions", nil)
	h.ServeHTTP(rec, req)
	// Empty body fails validation, proving the route reaches the handler.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterUnknownRoute(t *testing.T) {
	t.Parallel()
	h := newRouter(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
