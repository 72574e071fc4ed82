package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv はテストに影響する環境変数を空にします。
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "JWT_SECRET", "CORS_ALLOW_ORIGINS", "ORDER_SOURCE",
		"ORDER_CACHE_TTL", "PAGE_IDLE_TTL", "PAGE_JANITOR_INTERVAL", "DEFAULT_VIEWPORT_WIDTH", "PAGE_MAX_MOUNTED",
		"ORDER_API_BASE_URL", "ORDER_API_KEY", "ORDER_API_RPM",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, SourceSample, cfg.OrderSource)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, 30*time.Minute, cfg.PageIdleTTL)
	assert.Equal(t, time.Minute, cfg.JanitorInterval)
	assert.Equal(t, 1024, cfg.DefaultWidth)
	assert.Equal(t, 1000, cfg.MaxPages)
	assert.Empty(t, cfg.CORSOrigins)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("ORDER_SOURCE", "Remote")
	t.Setenv("ORDER_API_BASE_URL", "https://orders.example.com")
	t.Setenv("ORDER_CACHE_TTL", "30s")
	t.Setenv("PAGE_IDLE_TTL", "5m")
	t.Setenv("DEFAULT_VIEWPORT_WIDTH", "480")
	t.Setenv("PAGE_MAX_MOUNTED", "50")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, SourceRemote, cfg.OrderSource)
	assert.Equal(t, "https://orders.example.com", cfg.OrderAPI.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.PageIdleTTL)
	assert.Equal(t, 480, cfg.DefaultWidth)
	assert.Equal(t, 50, cfg.MaxPages)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown source", map[string]string{"ORDER_SOURCE": "ftp"}},
		{"remote without base url", map[string]string{"ORDER_SOURCE": "remote"}},
		{"bad duration", map[string]string{"PAGE_IDLE_TTL": "soon"}},
		{"zero idle ttl", map[string]string{"PAGE_IDLE_TTL": "0s"}},
		{"bad width", map[string]string{"DEFAULT_VIEWPORT_WIDTH": "wide"}},
		{"negative width", map[string]string{"DEFAULT_VIEWPORT_WIDTH": "-1"}},
		{"zero page limit", map[string]string{"PAGE_MAX_MOUNTED": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadEnv_DoesNotOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	// godotenv は空でも設定済みの変数を上書きしない
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7100\nLOG_LEVEL=debug\n"), 0o600))

	LoadEnv(path)
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}
