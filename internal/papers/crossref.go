// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/internal/httputil"
	"github.com/moleculab/chemscout/pkg/types"
)

// crossrefAPIBase is the Crossref works endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossrefAPIBase = "https://api.crossref.org/works"

// CrossrefSource queries the Crossref works API.
type CrossrefSource struct {
	Client *httputil.Client
	Logger zerolog.Logger
}

// Name returns the source identifier.
func (s *CrossrefSource) Name() string { return "crossref" }

// Search implements Source.
func (s *CrossrefSource) Search(ctx context.Context, query string, limit int) []types.PaperRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	records, err := s.search(ctx, query, limit)
	if err != nil {
		s.Logger.Warn().Err(err).Str("source", s.Name()).Str("query", query).
			Msg("paper search failed")
		return nil
	}
	return records
}

func (s *CrossrefSource) search(ctx context.Context, query string, limit int) ([]types.PaperRecord, error) {
	params := url.Values{
		"query": {query},
		"rows":  {fmt.Sprintf("%d", limit)},
	}

	resp, err := s.Client.Get(ctx, crossrefAPIBase+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("Crossref API request: %w", err)
	}
	defer resp.Body.Close()

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parsing Crossref response: %w", err)
	}

	var records []types.PaperRecord
	for _, item := range cr.Message.Items {
		if len(records) >= limit {
			break
		}

		title := ""
		if len(item.Title) > 0 {
			title = strings.TrimSpace(item.Title[0])
		}

		names := make([]string, 0, len(item.Author))
		for _, a := range item.Author {
			names = append(names, strings.TrimSpace(a.Given+" "+a.Family))
		}

		r := types.PaperRecord{
			Title:    title,
			Authors:  joinAuthors(names),
			Year:     crossrefYear(item.Issued),
			URL:      item.URL,
			Abstract: cleanAbstract(item.Abstract),
			PDFURL:   pickPDFLink(item.Link),
			Source:   s.Name(),
		}
		records = append(records, r)
	}
	return records, nil
}

// crossrefYear pulls the year out of a date-parts structure like
// [[2020, 5, 12]]. Crossref emits [[null]] for undated works.
func crossrefYear(issued crossrefDate) int {
	if len(issued.DateParts) == 0 || len(issued.DateParts[0]) == 0 {
		return 0
	}
	if y := issued.DateParts[0][0]; y != nil {
		return *y
	}
	return 0
}

// pickPDFLink selects the link whose content-type is exactly
// application/pdf; Crossref lists several representations per work.
func pickPDFLink(links []crossrefLink) string {
	for _, l := range links {
		if l.ContentType == "application/pdf" {
			return l.URL
		}
	}
	return ""
}

// Crossref works API JSON structures.
type crossrefResponse struct {
	Message struct {
		Items []crossrefItem `json:"items"`
	} `json:"message"`
}

type crossrefItem struct {
	Title    []string         `json:"title"`
	Author   []crossrefAuthor `json:"author"`
	Issued   crossrefDate     `json:"issued"`
	URL      string           `json:"URL"`
	Abstract string           `json:"abstract"`
	Link     []crossrefLink   `json:"link"`
}

type crossrefAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type crossrefDate struct {
	DateParts [][]*int `json:"date-parts"`
}

type crossrefLink struct {
	URL         string `json:"URL"`
	ContentType string `json:"content-type"`
}
