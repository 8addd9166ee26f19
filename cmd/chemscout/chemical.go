// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moleculab/chemscout/internal/chem"
	"github.com/moleculab/chemscout/internal/httputil"
	"github.com/moleculab/chemscout/pkg/types"
)

var chemicalCmd = &cobra.Command{
	Use:   "chemical [name]",
	Short: "Resolve a chemical name to a structure match",
	Long: `Chemical resolves a name against PubChem, Cactus, and Wikidata and
prints the best match: the matched name, PubChem CID when known, and a
structure image URL. When nothing matches, manual search links are
printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runChemical,
}

func runChemical(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return fmt.Errorf("chemical name must not be blank")
	}

	client := httputil.NewClient(cfg.HTTP)
	resolver := buildResolver(client)
	match := resolver.Resolve(context.Background(), query)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if match == nil {
			return enc.Encode(map[string]any{
				"match":        nil,
				"manual_links": chem.ManualSearchLinks(query),
			})
		}
		return enc.Encode(match)
	}

	var links []chem.SearchLink
	if match == nil {
		links = chem.ManualSearchLinks(query)
	}
	printMatch(match, links)
	return nil
}

// printMatch writes a human-readable match summary, or manual search
// links when there is no match.
func printMatch(match *types.ChemicalMatch, links []chem.SearchLink) {
	if match == nil {
		fmt.Println("No structure match found.")
		for _, l := range links {
			fmt.Printf("  Try %s: %s\n", l.Name, l.URL)
		}
		return
	}

	fmt.Printf("Matched: %s (via %s)\n", match.MatchedName, match.Source)
	if match.CID != "" {
		fmt.Printf("PubChem CID: %s\n", match.CID)
	}
	if match.ImageURL != "" {
		fmt.Printf("Structure: %s\n", match.ImageURL)
	}
}

func init() {
	chemicalCmd.Flags().Bool("json", false, "output the match as JSON")

	rootCmd.AddCommand(chemicalCmd)
}
