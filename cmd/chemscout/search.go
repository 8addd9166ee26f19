// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moleculab/chemscout/internal/papers"
)

var searchCmd = &cobra.Command{
	Use:   "search [chemical name]",
	Short: "Resolve a chemical and find related papers",
	Long: `Search runs the full pipeline: the name is resolved against PubChem,
Cactus, and Wikidata, the lookup is recorded in the local history, and
related papers are fetched from Semantic Scholar, Crossref, and arXiv
under the best name found.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return fmt.Errorf("chemical name must not be blank")
	}

	maxPapers, _ := cmd.Flags().GetInt("max-papers")
	if maxPapers <= 0 {
		maxPapers = cfg.Papers.MaxPapers
	}
	noHistory, _ := cmd.Flags().GetBool("no-history")

	p, cleanup, err := buildPipeline(!noHistory)
	if err != nil {
		return err
	}
	defer cleanup()

	out := p.Run(context.Background(), query, maxPapers)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printMatch(out.Match, out.ManualLinks)
	fmt.Printf("\nPapers for %q:\n", out.SearchTerm)
	papers.FormatTable(out.Papers, os.Stdout)

	if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("creating CSV file: %w", err)
		}
		defer f.Close()
		if err := papers.WriteCSV(out.Papers, f); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d paper(s) to %s\n", len(out.Papers), csvPath)
	}

	if outPath, _ := cmd.Flags().GetString("save"); outPath != "" {
		if err := papers.WriteResultFile(outPath, out.Query, out.SearchTerm, out.Match, out.Papers); err != nil {
			return fmt.Errorf("writing result file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote result file to %s\n", outPath)
	}
	return nil
}

func init() {
	searchCmd.Flags().Int("max-papers", 0, "maximum number of papers to return (default from config)")
	searchCmd.Flags().Bool("json", false, "output the full outcome as JSON")
	searchCmd.Flags().String("csv", "", "write papers to a CSV file")
	searchCmd.Flags().String("save", "", "write the full outcome to a YAML result file")
	searchCmd.Flags().Bool("no-history", false, "do not record this lookup in the history")

	rootCmd.AddCommand(searchCmd)
}
