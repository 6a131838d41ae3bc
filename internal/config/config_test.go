package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locket-admin/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:4000", cfg.Backend.BaseURL.String())
	assert.Zero(t, cfg.Backend.Timeout)
	assert.False(t, cfg.Backend.HardDelete())
	assert.True(t, cfg.Backend.UploadEnabled)
	assert.False(t, cfg.Demo.Enabled)
	assert.Equal(t, "locket_admin_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.NeedsPostgres())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BACKEND_BASE_URL", "https://api.locket.example")
	t.Setenv("BACKEND_TIMEOUT", "15s")
	t.Setenv("BACKEND_DELETE_MODE", "hard")
	t.Setenv("DEMO_ENABLED", "true")
	t.Setenv("DEMO_DRIVER", "postgres")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "api.locket.example", cfg.Backend.BaseURL.Host)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.True(t, cfg.Backend.HardDelete())
	assert.True(t, cfg.NeedsPostgres())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsUnknownModes(t *testing.T) {
	t.Chdir(t.TempDir())

	for key, value := range map[string]string{
		"BACKEND_DELETE_MODE": "archive",
		"DEMO_DRIVER":         "mysql",
		"SESSION_STORE":       "redis",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSessionStoreNeedsPostgres(t *testing.T) {
	cfg := Config{Session: configs.Session{Store: "postgres"}}
	assert.True(t, cfg.NeedsPostgres())
}

func TestLoggerLevels(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	} {
		assert.Equal(t, want, configs.Logger{Level: name}.SlogLevel(), name)
	}
}

func TestLoggerJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	slog.New(configs.Logger{Level: "info", Format: "JSON"}.Handler(&buf)).Debug("hidden")
	assert.Empty(t, buf.String())

	slog.New(configs.Logger{Level: "info", Format: "json"}.Handler(&buf)).Info("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
