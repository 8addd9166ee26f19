// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/internal/httputil"
	"github.com/moleculab/chemscout/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// arxivPDFBase is where PDF links are synthesized from entry identifiers;
// the Atom feed carries no explicit PDF field worth trusting.
var arxivPDFBase = "https://arxiv.org/pdf/"

// ArxivSource queries the arXiv Atom API.
type ArxivSource struct {
	Client *httputil.Client
	Logger zerolog.Logger
}

// Name returns the source identifier.
func (s *ArxivSource) Name() string { return "arxiv" }

// Search implements Source.
func (s *ArxivSource) Search(ctx context.Context, query string, limit int) []types.PaperRecord {
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

func (s *ArxivSource) search(ctx context.Context, query string, limit int) ([]types.PaperRecord, error) {
	reqURL := fmt.Sprintf("%s?search_query=all:%s&start=0&max_results=%d",
		arxivAPIBase, url.QueryEscape(query), limit)

	resp, err := s.Client.Get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var records []types.PaperRecord
	for _, entry := range feed.Entries {
		if len(records) >= limit {
			break
		}

		names := make([]string, 0, len(entry.Authors))
		for _, a := range entry.Authors {
			names = append(names, strings.TrimSpace(a.Name))
		}

		r := types.PaperRecord{
			Title:    strings.TrimSpace(entry.Title),
			Authors:  joinAuthors(names),
			Year:     arxivYear(entry.Published),
			URL:      entry.ID,
			Abstract: cleanAbstract(entry.Summary),
			PDFURL:   arxivPDFURL(entry.ID),
			Source:   s.Name(),
		}
		records = append(records, r)
	}
	return records, nil
}

// arxivYear reads the year as the first 4 characters of the published
// date string (e.g. "2023-01-17T18:59:59Z").
func arxivYear(published string) int {
	if len(published) < 4 {
		return 0
	}
	year, err := strconv.Atoi(published[:4])
	if err != nil {
		return 0
	}
	return year
}

// arxivPDFURL synthesizes the PDF link from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → ".../pdf/2301.07041v1.pdf").
func arxivPDFURL(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	return arxivPDFBase + idURL[idx+len(prefix):] + ".pdf"
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID        string        `xml:"id"`
	Title     string        `xml:"title"`
	Summary   string        `xml:"summary"`
	Published string        `xml:"published"`
	Authors   []arxivAuthor `xml:"author"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}
