package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "https://zoro.to", cfg.Site.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.True(t, cfg.Fetch.TLSFingerprint)
	assert.False(t, cfg.API.LegacyErrors)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ZORO_PORT", "9090")
	t.Setenv("ZORO_BASE_URL", "http://mirror.local//")
	t.Setenv("ZORO_HTTP_TIMEOUT", "1500ms")
	t.Setenv("ZORO_TLS_FINGERPRINT", "false")
	t.Setenv("ZORO_LEGACY_ERRORS", "true")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://mirror.local", cfg.Site.BaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Fetch.Timeout)
	assert.False(t, cfg.Fetch.TLSFingerprint)
	assert.True(t, cfg.API.LegacyErrors)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ZORO_PORT", "not-a-port")
	t.Setenv("ZORO_HTTP_TIMEOUT", "soon")
	t.Setenv("ZORO_LEGACY_ERRORS", "maybe")

	cfg := Load()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.False(t, cfg.API.LegacyErrors)
}
