package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdesk/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.DocStore.URL)
	assert.Equal(t, "genai", cfg.DocStore.Database)
	assert.Equal(t, 0.6, cfg.DocStore.Similarity)
	assert.Equal(t, 600, cfg.Agent.ReplyDelayMs)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("docstore:\n  url: http://db.example:8080\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "http://db.example:8080", cfg.DocStore.URL)
	assert.Equal(t, "genai", cfg.DocStore.Database)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 15, cfg.DocStore.TimeoutSecs)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SHOPDESK_DOCSTORE_URL", "http://override:9090")
	t.Setenv("SHOPDESK_LOG_LEVEL", "warning")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "http://override:9090", cfg.DocStore.URL)
	assert.Equal(t, "warning", cfg.Log.Level)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	cfg.Agent.CustomerName = "Maria Anders"

	require.NoError(t, config.Save(path, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Maria Anders", loaded.Agent.CustomerName)
}
