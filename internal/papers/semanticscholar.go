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

// semanticAPIBase is the Semantic Scholar paper search endpoint. Declared
// as a var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

const semanticFields = "title,authors,year,url,abstract,externalIds,openAccessPdf"

// SemanticScholarSource queries the Semantic Scholar graph API.
type SemanticScholarSource struct {
	Client *httputil.Client
	// APIKey raises rate limits; optional.
	APIKey string
	Logger zerolog.Logger
}

// Name returns the source identifier.
func (s *SemanticScholarSource) Name() string { return "semantic_scholar" }

// Search implements Source.
func (s *SemanticScholarSource) Search(ctx context.Context, query string, limit int) []types.PaperRecord {
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

func (s *SemanticScholarSource) search(ctx context.Context, query string, limit int) ([]types.PaperRecord, error) {
	params := url.Values{
		"query":  {query},
		"limit":  {fmt.Sprintf("%d", limit)},
		"fields": {semanticFields},
	}

	var headers map[string]string
	if s.APIKey != "" {
		headers = map[string]string{"x-api-key": s.APIKey}
	}

	resp, err := s.Client.GetWithHeaders(ctx, semanticAPIBase+"?"+params.Encode(), headers)
	if err != nil {
		return nil, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}

	var records []types.PaperRecord
	for _, paper := range sr.Data {
		if len(records) >= limit {
			break
		}

		names := make([]string, 0, len(paper.Authors))
		for _, a := range paper.Authors {
			names = append(names, a.Name)
		}

		r := types.PaperRecord{
			Title:    strings.TrimSpace(paper.Title),
			Authors:  joinAuthors(names),
			Year:     paper.Year,
			URL:      paper.URL,
			Abstract: cleanAbstract(paper.Abstract),
			Source:   s.Name(),
		}
		if paper.OpenAccessPDF != nil {
			r.PDFURL = paper.OpenAccessPDF.URL
		}
		records = append(records, r)
	}
	return records, nil
}

// Semantic Scholar API JSON structures.
type semanticResponse struct {
	Total int             `json:"total"`
	Data  []semanticPaper `json:"data"`
}

type semanticPaper struct {
	PaperID       string             `json:"paperId"`
	Title         string             `json:"title"`
	Abstract      string             `json:"abstract"`
	Year          int                `json:"year"`
	URL           string             `json:"url"`
	Authors       []semanticAuthor   `json:"authors"`
	OpenAccessPDF *semanticOpenAccess `json:"openAccessPdf"`
}

type semanticAuthor struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}

type semanticOpenAccess struct {
	URL string `json:"url"`
}
