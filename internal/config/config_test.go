package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, "*", cfg.Server.AllowedOrigins)
	assert.Equal(t, "assets/context.txt", cfg.Corpus.Path)
	assert.Equal(t, 3, cfg.Retrieval.MaxResults)
	assert.Equal(t, 0.1, cfg.Retrieval.MinScore)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 20, cfg.Gemini.TimeoutSecs)
	assert.Equal(t, 800, cfg.Gemini.MaxOutputTokens)
	assert.Equal(t, 0.7, cfg.Gemini.Temperature)
	assert.Equal(t, 40, cfg.Gemini.TopK)
	assert.Equal(t, 0.8, cfg.Gemini.TopP)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  addr: \":8080\"\ngemini:\n  model: \"gemini-1.5-flash\"\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	// Unset fields still get defaults.
	assert.Equal(t, 3, cfg.Retrieval.MaxResults)
	assert.Equal(t, 800, cfg.Gemini.MaxOutputTokens)
}

func TestLoad_ExplicitZeroIsKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("retrieval:\n  min_score: 0\ngemini:\n  temperature: 0\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Retrieval.MinScore)
	assert.Equal(t, 0.0, cfg.Gemini.Temperature)
	// Untouched fields still carry defaults.
	assert.Equal(t, 3, cfg.Retrieval.MaxResults)
	assert.Equal(t, 0.8, cfg.Gemini.TopP)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_MODEL", "gemini-env-model")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "gemini-env-model", cfg.Gemini.Model)
}

func TestAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	assert.Empty(t, APIKey())

	t.Setenv("GEMINI_API_KEY", "secret")
	assert.Equal(t, "secret", APIKey())
}
