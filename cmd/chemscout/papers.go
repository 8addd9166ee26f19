// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moleculab/chemscout/internal/httputil"
	"github.com/moleculab/chemscout/internal/papers"
)

var papersCmd = &cobra.Command{
	Use:   "papers [query]",
	Short: "Search literature APIs without chemical resolution",
	Long: `Papers queries Semantic Scholar, Crossref, and arXiv directly with the
given term, skipping chemical resolution and the history. Results are
deduplicated across sources and sorted by year, newest first.`,
	Args: cobra.ExactArgs(1),
	RunE: runPapers,
}

func runPapers(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return fmt.Errorf("query must not be blank")
	}

	maxPapers, _ := cmd.Flags().GetInt("max-papers")
	if maxPapers <= 0 {
		maxPapers = cfg.Papers.MaxPapers
	}

	client := httputil.NewClient(cfg.HTTP)
	aggregator := buildAggregator(client)
	records := aggregator.Search(context.Background(), query, maxPapers)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return papers.FormatJSON(records, os.Stdout)
	}
	papers.FormatTable(records, os.Stdout)
	return nil
}

func init() {
	papersCmd.Flags().Int("max-papers", 0, "maximum number of papers to return (default from config)")
	papersCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(papersCmd)
}
