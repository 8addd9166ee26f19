// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/moleculab/chemscout/pkg/types"
)

// csvHeader mirrors the PaperRecord fields, one column each.
var csvHeader = []string{"title", "authors", "year", "url", "abstract", "pdf_url", "source"}

// WriteCSV exports records as delimited tabular text: a header row of
// field names, then one row per record. Unknown years export as empty
// cells.
func WriteCSV(records []types.PaperRecord, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range records {
		year := ""
		if r.Year > 0 {
			year = strconv.Itoa(r.Year)
		}
		row := []string{r.Title, r.Authors, year, r.URL, r.Abstract, r.PDFURL, r.Source}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
