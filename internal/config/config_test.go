package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "APP_PORT", "POSTGRES_DSN", "POSTGRES_MAX_CONNS", "POSTGRES_ENSURE_SCHEMA",
		"REDIS_DB", "LOG_LEVEL", "EVENTS_CHANNEL", "EVENTS_REDIS_ENABLED", "HTTP_REQUEST_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "department-store", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Equal(t, int32(4), cfg.Postgres.MaxConns)
	assert.True(t, cfg.Postgres.EnsureSchema)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Events.RedisEnabled)
	assert.Equal(t, "departments.events", cfg.Events.Channel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/departments")
	t.Setenv("POSTGRES_MAX_CONNS", "not-a-number")
	t.Setenv("POSTGRES_ENSURE_SCHEMA", "false")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("EVENTS_REDIS_ENABLED", "0")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.App.Addr())
	assert.Equal(t, "postgres://localhost/departments", cfg.Postgres.DSN)
	assert.Equal(t, int32(4), cfg.Postgres.MaxConns)
	assert.False(t, cfg.Postgres.EnsureSchema)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.False(t, cfg.Events.RedisEnabled)
	assert.Zero(t, cfg.App.RequestTimeout())
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "primary")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid REDIS_DB")
}
