package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err, "defaults alone must produce a valid config")

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, []string{"chrome-extension://*"}, cfg.Server.AllowedOrigins)

	// No API key means narrative enrichment stays off; that is a valid state
	assert.Empty(t, cfg.Groq.APIKey)
	assert.Equal(t, "https://api.groq.com", cfg.Groq.BaseURL)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)

	assert.Equal(t, "memory", cfg.Cache.Type)
	assert.Equal(t, 168*time.Hour, cfg.Cache.TTL)

	assert.Equal(t, 60, cfg.RateLimit.PerIP)
	assert.False(t, cfg.Scoring.EnableDebugLogging)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ECOLENS_SERVER_PORT", "9090")
	t.Setenv("ECOLENS_GROQ_API_KEY", "gsk_test_key")
	t.Setenv("ECOLENS_CACHE_TTL", "24h")
	t.Setenv("ECOLENS_RATELIMIT_PER_IP", "120")
	t.Setenv("ECOLENS_SCORING_ENABLE_DEBUG_LOGGING", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "gsk_test_key", cfg.Groq.APIKey)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 120, cfg.RateLimit.PerIP)
	assert.True(t, cfg.Scoring.EnableDebugLogging)
}

func TestLoadRedisCache(t *testing.T) {
	t.Setenv("ECOLENS_CACHE_TYPE", "redis")
	t.Setenv("ECOLENS_CACHE_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Cache.Type)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
}

func TestLoadInvalidCacheType(t *testing.T) {
	t.Setenv("ECOLENS_CACHE_TYPE", "memcached")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache type")
}

func TestLoadRedisWithoutURL(t *testing.T) {
	t.Setenv("ECOLENS_CACHE_TYPE", "redis")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Redis URL")
}
