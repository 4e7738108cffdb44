package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1.0, cfg.TraceProbability)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "userregistry.events", cfg.EventsChannel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.TLS())
}

func TestOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"USERS_ADDR":           ":9090",
		"REDIS_ADDR":           "redis:6379",
		"CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
		"USERS_TLS_CERT":       "server.crt",
		"USERS_TLS_KEY":        "server.key",
		"SHUTDOWN_TIMEOUT":     "3s",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.TLS())
}

func TestInvalid(t *testing.T) {
	_, err := LoadFrom(map[string]string{"OTEL_PROBABILITY": "2"})
	assert.Error(t, err)

	_, err = LoadFrom(map[string]string{"USERS_TLS_CERT": "server.crt"})
	assert.Error(t, err)

	_, err = LoadFrom(map[string]string{"SHUTDOWN_TIMEOUT": "soon"})
	assert.Error(t, err)
}
