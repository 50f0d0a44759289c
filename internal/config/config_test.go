package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(env(nil))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://static.mycalinks.io/pos/general/purchase-table/templates/", cfg.TemplateBaseURL)
	assert.Equal(t, "file://resources/psa_logo.png", cfg.BadgeURL)
	assert.Empty(t, cfg.FontPath)
	assert.Equal(t, 12*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.FlattenAllGenres)
	assert.Equal(t, BackendLocal, cfg.StorageBackend)
	assert.Empty(t, cfg.BotToken)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(env(map[string]string{
		"PORT":               ":9090",
		"BOT_TOKEN":          "s3cret",
		"FETCH_TIMEOUT":      "3s",
		"FLATTEN_ALL_GENRES": "false",
		"STORAGE_BACKEND":    "GCS",
		"STORAGE_BUCKET":     "pos-assets",
		"TEMPLATE_BASE_URL":  "https://cdn.example.com/templates",
	}))
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.BotToken)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.False(t, cfg.FlattenAllGenres)
	assert.Equal(t, BackendGCS, cfg.StorageBackend)
	assert.Equal(t, "pos-assets", cfg.StorageBucket)
	assert.Equal(t, "https://cdn.example.com/templates", cfg.TemplateBaseURL)
}

func TestParseRejectsBadValues(t *testing.T) {
	for _, m := range []map[string]string{
		{"FETCH_TIMEOUT": "soon"},
		{"FETCH_TIMEOUT": "-1s"},
		{"FLATTEN_ALL_GENRES": "maybe"},
		{"STORAGE_BACKEND": "s3"},
		{"STORAGE_BACKEND": "gcs"},
	} {
		_, err := Parse(env(m))
		assert.Error(t, err, m)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("LOG_LEVEL", "error")
	os.Unsetenv("BOT_TOKEN")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BOT_TOKEN=from-file\nLOG_LEVEL=debug\n"), 0o644))

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.BotToken)
	assert.Equal(t, "error", cfg.LogLevel, "existing variables win")
}
