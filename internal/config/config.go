// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads chemscout configuration from defaults, an
// optional chemscout.yaml file, and CHEMSCOUT_* environment variables,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/moleculab/chemscout/pkg/types"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. CHEMSCOUT_PAPERS_MAX_PAPERS=25.
const EnvPrefix = "CHEMSCOUT"

// Load reads configuration and validates it. A missing config file is
// not an error; defaults and environment variables still apply.
func Load(configPath string) (*types.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("chemscout")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.config/chemscout")
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file must exist; the default search is
		// allowed to come up empty.
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// The Semantic Scholar key is a secret and never read from the
	// config file.
	if key := os.Getenv(EnvPrefix + "_SEMANTIC_SCHOLAR_API_KEY"); key != "" {
		cfg.Papers.SemanticScholarAPIKey = key
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.timeout", "10s")
	v.SetDefault("http.user_agent", "chemscout/0.1 (+https://github.com/moleculab/chemscout)")
	v.SetDefault("http.max_attempts", 3)
	v.SetDefault("http.insecure_fallback", false)

	v.SetDefault("chemical.enable_pubchem", true)
	v.SetDefault("chemical.enable_cactus", true)
	v.SetDefault("chemical.enable_wikidata", true)

	v.SetDefault("papers.max_papers", 10)
	v.SetDefault("papers.enable_semantic_scholar", true)
	v.SetDefault("papers.enable_crossref", true)
	v.SetDefault("papers.enable_arxiv", true)
	v.SetDefault("papers.cache_ttl", "1h")

	v.SetDefault("history.path", "data/chemicals.db")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true,
	"warn": true, "error": true, "fatal": true, "panic": true,
}

// Validate checks a configuration for values that would misbehave at
// runtime.
func Validate(cfg *types.Config) error {
	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %s", cfg.HTTP.Timeout)
	}
	if cfg.HTTP.MaxAttempts <= 0 {
		return fmt.Errorf("http.max_attempts must be positive, got %d", cfg.HTTP.MaxAttempts)
	}
	if cfg.Papers.MaxPapers <= 0 {
		return fmt.Errorf("papers.max_papers must be positive, got %d", cfg.Papers.MaxPapers)
	}
	if cfg.Papers.CacheTTL < 0 {
		return fmt.Errorf("papers.cache_ttl must not be negative, got %s", cfg.Papers.CacheTTL)
	}
	if !cfg.Chemical.EnablePubChem && !cfg.Chemical.EnableCactus && !cfg.Chemical.EnableWikidata {
		return fmt.Errorf("at least one chemical source must be enabled")
	}
	if !cfg.Papers.EnableSemanticScholar && !cfg.Papers.EnableCrossref && !cfg.Papers.EnableArxiv {
		return fmt.Errorf("at least one paper source must be enabled")
	}
	if cfg.History.Path == "" {
		return fmt.Errorf("history.path is required")
	}
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if !validLogLevels[strings.ToLower(cfg.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", cfg.Logging.Level)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	return nil
}
