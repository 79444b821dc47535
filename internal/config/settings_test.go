package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("FOCUSD_HOME", home)
	t.Setenv("FOCUSD_LISTEN_ADDR", "")
	t.Setenv("FOCUSD_DB_PATH", "")
	t.Setenv("FOCUSD_DEBUG", "")
	t.Setenv("FOCUSD_LOG_FILE", "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := setTestHome(t)

	settings, err := Load()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "focusd.db"), settings.DBPath)
	assert.Equal(t, ":8080", settings.ListenAddr)
	assert.False(t, settings.Debug)
	assert.Equal(t, 60, settings.RateLimitRequests)
	assert.Equal(t, 60, settings.RateLimitWindowSeconds)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	home := setTestHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{
		"listen_addr": ":9090",
		"debug": true,
		"rate_limit_requests": 10
	}`), 0644))

	settings, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9090", settings.ListenAddr)
	assert.True(t, settings.Debug)
	assert.Equal(t, 10, settings.RateLimitRequests)
	assert.Equal(t, 60, settings.RateLimitWindowSeconds, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := setTestHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{
		"listen_addr": ":9090",
		"db_path": "/tmp/file.db"
	}`), 0644))
	t.Setenv("FOCUSD_LISTEN_ADDR", ":7070")
	t.Setenv("FOCUSD_DB_PATH", filepath.Join(home, "env.db"))

	settings, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":7070", settings.ListenAddr)
	assert.Equal(t, filepath.Join(home, "env.db"), settings.DBPath)
}

func TestLoad_MalformedFile(t *testing.T) {
	home := setTestHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{not json`), 0644))

	_, err := Load()

	assert.Error(t, err)
}
