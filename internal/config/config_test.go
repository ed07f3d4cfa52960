package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("DB_CONN_MAX_LIFETIME_SEC", "60")
	t.Setenv("ADMIN_API_KEY", "secret-key")
	t.Setenv("LOG_PRETTY", "true")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "secret-key", cfg.AdminAPIKey)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_PRETTY", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestEnvString(t *testing.T) {
	t.Setenv("TEST_ENV_VAR", "value")

	assert.Equal(t, "value", envString("TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", envString("NON_EXISTENT", "default"))
}

func TestEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "true")
	assert.True(t, envBool("TEST_BOOL_VAR", false))

	t.Setenv("TEST_BOOL_VAR", "not-a-bool")
	assert.False(t, envBool("TEST_BOOL_VAR", false))

	assert.True(t, envBool("TEST_BOOL_MISSING", true))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("TEST_INT_VAR", "42")
	assert.Equal(t, 42, envInt("TEST_INT_VAR", 1))

	t.Setenv("TEST_INT_VAR", "not-a-number")
	assert.Equal(t, 1, envInt("TEST_INT_VAR", 1))

	assert.Equal(t, 7, envInt("TEST_INT_MISSING", 7))
}
