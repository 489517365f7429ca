package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.ncei.noaa.gov/access/services/data/v1", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("GHCND_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("GHCND_REQUEST_TIMEOUT", "5s")
	t.Setenv("GHCND_LOG_LEVEL", "debug")
	t.Setenv("GHCND_LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://mirror.test/v1\nlog_level: warn\n"), 0o600))
	t.Setenv("GHCND_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://mirror.test/v1", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o600))
	t.Setenv("GHCND_CONFIG", path)
	t.Setenv("GHCND_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("empty base url", func(t *testing.T) {
		t.Setenv("GHCND_BASE_URL", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("GHCND_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := Load()
		require.Error(t, err)
	})
}
