package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"items-backend/internal/infrastructure/database"
)

var configKeys = []string{
	"APP_NAME", "APP_ENV", "APP_PORT", "APP_VERSION", "LOG_LEVEL",
	"DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_SSLMODE", "DB_MAX_CONNS", "DB_MIN_CONNS", "DB_MAX_RETRIES", "DB_RETRY_DELAY",
	"DB_CONNECT_TIMEOUT", "DB_MAX_CONN_LIFETIME", "DB_MAX_CONN_IDLE_TIME", "DB_HEALTH_CHECK_PERIOD",
	"REDIS_ENABLED", "REDIS_HOST", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL",
	"WEB_PORT", "WEB_API_BASE_URL", "WEB_API_TIMEOUT",
}

// clearEnv blanks every key Load reads; blank values fall back to defaults
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, database.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "./database.db", cfg.Database.Path)
	assert.Equal(t, int32(1), cfg.Database.MaxConns)
	assert.Equal(t, 5, cfg.Database.MaxRetries)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)

	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)

	assert.Equal(t, "3000", cfg.Web.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Web.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.Web.APITimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("WEB_API_BASE_URL", "http://api:8080/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, database.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "http://api:8080", cfg.Web.APIBaseURL)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown driver", "DB_DRIVER", "oracle"},
		{"bad port", "DB_PORT", "abc"},
		{"bad retry delay", "DB_RETRY_DELAY", "soon"},
		{"bad redis db", "REDIS_DB", "zero"},
		{"bad redis flag", "REDIS_ENABLED", "maybe"},
		{"bad cache ttl", "CACHE_TTL", "5"},
		{"bad api timeout", "WEB_API_TIMEOUT", "ten seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate_Production(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")

	t.Setenv("DB_PASSWORD", "secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestValidate_SQLiteNeedsNoPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	assert.NoError(t, err)
}
