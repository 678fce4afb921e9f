package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"GO_ENV", "CACHE_BACKEND", "CACHE_TTL", "DB_QUERY_TIMEOUT", "OTEL_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.Tracing.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_QUERY_TIMEOUT", "750ms")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 750*time.Millisecond, cfg.Database.QueryTimeout)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "many")
	assert.Equal(t, 10, getEnvAsInt("DB_MAX_IDLE_CONNS", 10))
}
