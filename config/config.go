package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Site   SiteConfig
	Fetch  FetchConfig
	API    APIConfig
	Log    LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8000
	Mode string // "debug", "release", "test"; default: "release"

	// ShutdownTimeout bounds how long in-flight requests may run after
	// a shutdown signal.
	ShutdownTimeout time.Duration // default: 5s
}

// SiteConfig describes the scraped site.
type SiteConfig struct {
	// BaseURL is the scheme and host of the site, without a trailing slash.
	BaseURL string // default: "https://zoro.to"
}

// FetchConfig controls the outbound HTTP engine.
type FetchConfig struct {
	// Timeout is the total deadline for one upstream request
	// (connect, headers and body).
	Timeout time.Duration // default: 5s

	// TLSFingerprint dials HTTPS with a Chrome ClientHello and sends
	// browser-like headers. When false a plain net/http transport is used.
	TLSFingerprint bool // default: true
}

// APIConfig controls how the API reports failures.
type APIConfig struct {
	// LegacyErrors answers upstream non-2xx with HTTP 200 and the literal
	// body "Something went wrong!" instead of a structured error.
	LegacyErrors bool // default: false
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is applied first if present;
// variables already set in the environment win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		Server: ServerConfig{
			Host:            envOr("ZORO_HOST", "0.0.0.0"),
			Port:            envIntOr("ZORO_PORT", 8000),
			Mode:            envOr("ZORO_MODE", "release"),
			ShutdownTimeout: envDurationOr("ZORO_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Site: SiteConfig{
			BaseURL: strings.TrimRight(envOr("ZORO_BASE_URL", "https://zoro.to"), "/"),
		},
		Fetch: FetchConfig{
			Timeout:        envDurationOr("ZORO_HTTP_TIMEOUT", 5*time.Second),
			TLSFingerprint: envBoolOr("ZORO_TLS_FINGERPRINT", true),
		},
		API: APIConfig{
			LegacyErrors: envBoolOr("ZORO_LEGACY_ERRORS", false),
		},
		Log: LogConfig{
			Level:  envOr("ZORO_LOG_LEVEL", "info"),
			Format: envOr("ZORO_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
