package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"LADDER_PRIMARY.ENV":                 "local",
		"LADDER_SERVER.PORT":                 "8080",
		"LADDER_SERVER.READ_TIMEOUT":         "30",
		"LADDER_SERVER.WRITE_TIMEOUT":        "30",
		"LADDER_SERVER.IDLE_TIMEOUT":         "60",
		"LADDER_SERVER.CORS_ALLOWED_ORIGINS": "http://localhost:3000",
		"LADDER_DATABASE.HOST":               "localhost",
		"LADDER_DATABASE.PORT":               "5432",
		"LADDER_DATABASE.USER":               "postgres",
		"LADDER_DATABASE.PASSWORD":           "postgres",
		"LADDER_DATABASE.NAME":               "ladder",
		"LADDER_DATABASE.SSL_MODE":           "disable",
		"LADDER_DATABASE.MAX_OPEN_CONNS":     "25",
		"LADDER_DATABASE.MAX_IDLE_CONNS":     "25",
		"LADDER_DATABASE.CONN_MAX_LIFETIME":  "300",
		"LADDER_DATABASE.CONN_MAX_IDLE_TIME": "300",
		"LADDER_REDIS.ADDRESS":               "localhost:6379",
		"LADDER_ADMIN.USERNAME":              "admin",
		"LADDER_ADMIN.ACCOUNT_NAME":          "AdminAccount",
	}

	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults to optional blocks", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "admin", cfg.Admin.Username)
		assert.Equal(t, "AdminAccount", cfg.Admin.AccountName)

		assert.Equal(t, 24*60*60, cfg.Auth.SessionTTL)
		assert.Equal(t, "ladder_session", cfg.Auth.CookieName)
		assert.Equal(t, "http://api.pathofexile.com", cfg.Integration.LadderAPIURL)
		assert.Equal(t, 10, cfg.Integration.LadderLimit)
		assert.Equal(t, float64(20), cfg.RateLimit.RequestsPerSecond)
		assert.Equal(t, 40, cfg.RateLimit.Burst)

		require.NotNil(t, cfg.Observability)
		assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
		assert.Equal(t, "local", cfg.Observability.Environment)
		assert.True(t, cfg.IsLocal())
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LADDER_INTEGRATION.LADDER_LIMIT", "25")
		t.Setenv("LADDER_AUTH.COOKIE_NAME", "sid")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 25, cfg.Integration.LadderLimit)
		assert.Equal(t, "sid", cfg.Auth.CookieName)
	})

	t.Run("fails without admin identity", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LADDER_ADMIN.USERNAME", "")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("rejects an out of range ladder limit", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LADDER_INTEGRATION.LADDER_LIMIT", "500")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestObservabilityConfig(t *testing.T) {
	t.Run("defaults validate", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, 100*time.Millisecond, cfg.Logging.SlowQueryThreshold)
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative slow query threshold is rejected", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.SlowQueryThreshold = -time.Second
		assert.Error(t, cfg.Validate())
	})

	t.Run("log level falls back by environment", func(t *testing.T) {
		cfg := DefaultObservabilityConfig()
		cfg.Logging.Level = ""

		cfg.Environment = "production"
		assert.Equal(t, "info", cfg.GetLogLevel())
		assert.True(t, cfg.IsProduction())

		cfg.Environment = "development"
		assert.Equal(t, "debug", cfg.GetLogLevel())
	})
}
