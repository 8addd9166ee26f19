// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chemscout CLI.
// Subcommands cover the full lookup pipeline (search), its individual
// stages (chemical, papers), the local history, and an HTTP server.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/moleculab/chemscout/internal/config"
	"github.com/moleculab/chemscout/internal/observability"
	"github.com/moleculab/chemscout/internal/secrets"
	"github.com/moleculab/chemscout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// loadedSecrets holds API keys loaded from .secrets/ at startup.
	loadedSecrets map[string]string

	cfg    *types.Config
	logger zerolog.Logger
)

// rootCmd is the base command for the chemscout CLI.
var rootCmd = &cobra.Command{
	Use:   "chemscout",
	Short: "Chemical structure lookup and literature search",
	Long: `chemscout resolves chemical names against public chemistry databases
(PubChem, Cactus, Wikidata) and finds related research papers
(Semantic Scholar, Crossref, arXiv). Every lookup is recorded in a
local SQLite history.

Use search for the full pipeline, or chemical and papers to run a
single stage. serve exposes the same pipeline over HTTP.`,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}

		cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cfg.Papers.SemanticScholarAPIKey == "" {
			cfg.Papers.SemanticScholarAPIKey = loadedSecrets[secrets.SemanticScholarKey]
		}

		logger = observability.NewLogger(cfg.Logging)
		return nil
	}
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chemscout.yaml or ~/.config/chemscout/chemscout.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
