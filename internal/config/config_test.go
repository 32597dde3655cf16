package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SERVER_HOST", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("server:\n  host: 10.0.0.1\n  port: 8088\nlogging:\n  level: warn\n  format: json\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
