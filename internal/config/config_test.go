package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"DATABASE_URL": "postgres://localhost/posts"}))
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, 25, cfg.DBMaxOpen)
	assert.Equal(t, 25, cfg.DBMaxIdle)
	assert.Equal(t, 300*time.Second, cfg.DBMaxLifetime)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"*"}, cfg.CorsAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"PORT":                 " 8080 ",
		"STORE":                "Memory",
		"DB_AUTO_MIGRATE":      "false",
		"CORS_ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
		"SHUTDOWN_TIMEOUT":     "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsAllowedOrigins)
	assert.Equal(t, time.Second, cfg.ShutdownTimeout)
}

func TestFromEnvErrors(t *testing.T) {
	_, err := FromEnv(env(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL is required")

	_, err = FromEnv(env(map[string]string{"STORE": "redis"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE must be")

	_, err = FromEnv(env(map[string]string{"STORE": "memory", "DB_MAX_OPEN": "lots", "DB_AUTO_MIGRATE": "maybe"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_OPEN must be a non-negative integer")
	assert.Contains(t, err.Error(), "DB_AUTO_MIGRATE must be a boolean")
}
