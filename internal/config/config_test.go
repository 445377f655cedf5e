package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "http://localhost:4000/api",
		"request_timeout_seconds": 5,
		"debug": true
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "info", cfg.LogLevel, "missing level falls back")
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ARTDISTRICT_API_URL", "http://localhost:9999/api")
	t.Setenv("ARTDISTRICT_DEBUG", "true")
	t.Setenv("ARTDISTRICT_LOG_LEVEL", "debug")
	t.Setenv("ARTDISTRICT_TIMEOUT_SECONDS", "7")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/api", cfg.APIBaseURL)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout())
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url":"http://file"}`), 0644))
	t.Setenv("ARTDISTRICT_API_URL", "http://env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.APIBaseURL)
}

func TestBadEnvValuesIgnored(t *testing.T) {
	t.Setenv("ARTDISTRICT_DEBUG", "banana")
	t.Setenv("ARTDISTRICT_TIMEOUT_SECONDS", "-3")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout())
}

func TestDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ARTDISTRICT_DIR", dir)
	assert.Equal(t, dir, Dir())
	assert.Equal(t, filepath.Join(dir, "config.json"), DefaultPath())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := Default()
	cfg.APIBaseURL = "http://localhost:4000/api"
	cfg.Debug = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/api", loaded.APIBaseURL)
	assert.True(t, loaded.Debug)
}
