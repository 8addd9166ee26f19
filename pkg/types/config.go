// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds the shared HTTP client settings used by every adapter.
type HTTPConfig struct {
	// Timeout bounds each HTTP request, connection included (default 10s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is sent with every request (e.g. "chemscout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxAttempts is the total number of tries for transient upstream
	// failures (HTTP 500/502/503/504). Default 3. Client errors are
	// never retried.
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts" mapstructure:"max_attempts"`

	// InsecureFallback allows one extra attempt with TLS verification
	// disabled when a request fails purely on certificate validation.
	// Off by default; enable only for debugging broken middleboxes.
	InsecureFallback bool `json:"insecure_fallback" yaml:"insecure_fallback" mapstructure:"insecure_fallback"`
}

// ChemicalConfig holds settings for the chemical resolution stage.
type ChemicalConfig struct {
	// EnablePubChem controls the primary PubChem adapter.
	EnablePubChem bool `json:"enable_pubchem" yaml:"enable_pubchem" mapstructure:"enable_pubchem"`

	// EnableCactus controls the Cactus structure-image fallback adapter.
	EnableCactus bool `json:"enable_cactus" yaml:"enable_cactus" mapstructure:"enable_cactus"`

	// EnableWikidata controls the Wikidata entity-search adapter.
	EnableWikidata bool `json:"enable_wikidata" yaml:"enable_wikidata" mapstructure:"enable_wikidata"`
}

// PaperConfig holds settings for the literature aggregation stage.
type PaperConfig struct {
	// MaxPapers caps the merged, deduplicated result list (default 10).
	MaxPapers int `json:"max_papers" yaml:"max_papers" mapstructure:"max_papers"`

	// EnableSemanticScholar controls the Semantic Scholar adapter.
	EnableSemanticScholar bool `json:"enable_semantic_scholar" yaml:"enable_semantic_scholar" mapstructure:"enable_semantic_scholar"`

	// EnableCrossref controls the Crossref adapter.
	EnableCrossref bool `json:"enable_crossref" yaml:"enable_crossref" mapstructure:"enable_crossref"`

	// EnableArxiv controls the arXiv adapter.
	EnableArxiv bool `json:"enable_arxiv" yaml:"enable_arxiv" mapstructure:"enable_arxiv"`

	// SemanticScholarAPIKey raises Semantic Scholar rate limits; optional.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty" mapstructure:"semantic_scholar_api_key"`

	// CacheTTL enables a time-boxed memo of aggregation results keyed by
	// search term. Zero disables caching.
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl" mapstructure:"cache_ttl"`
}

// HistoryConfig holds settings for the local search-history store.
type HistoryConfig struct {
	// Path is the SQLite database file (default "data/chemicals.db").
	// Parent directories are created on open.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// ServerConfig holds settings for the optional HTTP API server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// ReadTimeout bounds request reads.
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`

	// WriteTimeout bounds response writes. Must exceed the worst-case
	// fan-out latency (one adapter timeout per stage).
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "json" or "console".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups every stage configuration.
type Config struct {
	HTTP     HTTPConfig     `json:"http" yaml:"http" mapstructure:"http"`
	Chemical ChemicalConfig `json:"chemical" yaml:"chemical" mapstructure:"chemical"`
	Papers   PaperConfig    `json:"papers" yaml:"papers" mapstructure:"papers"`
	History  HistoryConfig  `json:"history" yaml:"history" mapstructure:"history"`
	Server   ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging" mapstructure:"logging"`
}
