// internal/common/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
api:
  base_url: "https://tracker.example.com"
  timeout: 5000
state:
  path: "/tmp/huntboard-state.json"
logging:
  level: "debug"
`)

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "https://tracker.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5000, cfg.API.Timeout)
	assert.Equal(t, "/tmp/huntboard-state.json", cfg.State.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Defaults fill the gaps.
	assert.Equal(t, "huntboard", cfg.App.Name)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromFileDefaults(t *testing.T) {
	path := writeConfigFile(t, "app:\n  name: \"huntboard\"\n")

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 30000, cfg.API.Timeout)
	assert.NotEmpty(t, cfg.State.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFileRejectsBadURL(t *testing.T) {
	path := writeConfigFile(t, "api:\n  base_url: \"ftp://example.com\"\n")

	_, err := LoadFromFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, GetDuration(30000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
