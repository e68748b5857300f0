package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.IsProd())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.False(t, cfg.ExtractorEnabled())
	assert.Empty(t, cfg.RedisAddr)
}

func Test_Load_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("EXTRACTOR_API_KEY", "sk-test")
	t.Setenv("EXTRACTOR_TIMEOUT", "10s")
	t.Setenv("RATE_LIMIT_PER_MIN", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.ExtractorEnabled())
	assert.Equal(t, 10*time.Second, cfg.ExtractorTimeout)
	assert.Equal(t, 5, cfg.RateLimitPerMin)
}

func Test_Load_BadDuration(t *testing.T) {
	t.Setenv("CACHE_TTL", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
}

func Test_GetBackoffConfig_TestEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	cfg, err := Load()
	require.NoError(t, err)

	maxElapsed, initial, maxIv, mult := cfg.GetBackoffConfig()
	assert.Equal(t, 5*time.Second, maxElapsed)
	assert.Equal(t, 100*time.Millisecond, initial)
	assert.Equal(t, time.Second, maxIv)
	assert.Equal(t, 2.0, mult)
}
