// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 3, cfg.HTTP.MaxAttempts)
	assert.False(t, cfg.HTTP.InsecureFallback)

	assert.True(t, cfg.Chemical.EnablePubChem)
	assert.True(t, cfg.Chemical.EnableCactus)
	assert.True(t, cfg.Chemical.EnableWikidata)

	assert.Equal(t, 10, cfg.Papers.MaxPapers)
	assert.Equal(t, time.Hour, cfg.Papers.CacheTTL)

	assert.Equal(t, "data/chemicals.db", cfg.History.Path)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chemscout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  timeout: 5s
  insecure_fallback: true
papers:
  max_papers: 25
  enable_arxiv: false
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.True(t, cfg.HTTP.InsecureFallback)
	assert.Equal(t, 25, cfg.Papers.MaxPapers)
	assert.False(t, cfg.Papers.EnableArxiv)
	assert.True(t, cfg.Papers.EnableCrossref, "defaults survive a partial file")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CHEMSCOUT_PAPERS_MAX_PAPERS", "3")
	t.Setenv("CHEMSCOUT_SEMANTIC_SCHOLAR_API_KEY", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Papers.MaxPapers)
	assert.Equal(t, "s3cret", cfg.Papers.SemanticScholarAPIKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero timeout", "http:\n  timeout: 0s\n"},
		{"zero max papers", "papers:\n  max_papers: 0\n"},
		{"negative cache ttl", "papers:\n  cache_ttl: -1s\n"},
		{"all chemical sources off", "chemical:\n  enable_pubchem: false\n  enable_cactus: false\n  enable_wikidata: false\n"},
		{"all paper sources off", "papers:\n  enable_semantic_scholar: false\n  enable_crossref: false\n  enable_arxiv: false\n"},
		{"bad log level", "logging:\n  level: loud\n"},
		{"empty history path", "history:\n  path: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chemscout.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
