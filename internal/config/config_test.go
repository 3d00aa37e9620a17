package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPicksEnvProfile(t *testing.T) {
	path := writeYAML(t, `
env: prod
local:
  shop:
    base_url: http://localhost:8000
prod:
  shop:
    base_url: https://shop.example.com
    submitter_id: 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "https://shop.example.com", cfg.Shop.BaseURL)
	assert.Equal(t, int64(7), cfg.Shop.SubmitterID)
}

func TestLoadDefaults(t *testing.T) {
	path := writeYAML(t, "env: local\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Shop.BaseURL)
	assert.Equal(t, int64(1), cfg.Shop.SubmitterID)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 30, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, 0, cfg.HTTP.Retries, "failures surface by default, no retries")
	assert.False(t, cfg.Render.UnsafeHTML, "sanitized rendering is the default")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadUnknownEnv(t *testing.T) {
	path := writeYAML(t, "env: staging\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown env")
}

func TestDefaultMatchesEmptyLocalProfile(t *testing.T) {
	path := writeYAML(t, "env: local\n")
	fromFile, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, fromFile, Default())
}
