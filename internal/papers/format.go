// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/moleculab/chemscout/pkg/types"
)

// FormatTable writes records as a human-readable table to w.
func FormatTable(records []types.PaperRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-4s  %s\n",
		"Rank", "Title", "Authors", "Year", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 104))

	for i, r := range records {
		year := ""
		if r.Year > 0 {
			year = fmt.Sprintf("%d", r.Year)
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-4s  %s\n",
			i+1, truncate(r.Title, 60), truncate(r.Authors, 24), year, r.Source)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(records))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.PaperRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
