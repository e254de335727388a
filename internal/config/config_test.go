package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("SERVICE_NAME", "chitty-gateway")
	t.Setenv("KV_TTL_SECONDS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "chitty-gateway", cfg.App.ServiceName)
	assert.Empty(t, cfg.Storage.RedisURL)
	assert.Equal(t, 0, cfg.Storage.TTLSeconds)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_BASE_URL", "https://gateway.example")
	t.Setenv("KV_TTL_SECONDS", "3600")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.Equal(t, "https://gateway.example", cfg.App.BaseURL)
	assert.Equal(t, 3600, cfg.Storage.TTLSeconds)
	assert.True(t, cfg.IsProduction())
}
