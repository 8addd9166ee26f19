// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chem

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

// Wikidata endpoints, declared as vars so tests can substitute httptest
// servers.
var (
	wikidataAPIBase  = "https://www.wikidata.org/w/api.php"
	wikidataPageBase = "https://www.wikidata.org/wiki/"
)

// WikidataSource is the last-resort chemical adapter. It searches
// Wikidata entities by label; a hit yields the entity page rather than a
// structure image, which still lets the user confirm the compound exists.
type WikidataSource struct {
	Client *httputil.Client
	Logger zerolog.Logger
}

// Name returns the source identifier.
func (s *WikidataSource) Name() string { return string(types.SourceWikidata) }

// Lookup implements Source.
func (s *WikidataSource) Lookup(ctx context.Context, query string) *types.ChemicalMatch {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	match, err := s.lookup(ctx, query)
	if err != nil {
		s.Logger.Debug().Err(err).Str("source", s.Name()).Str("query", query).
			Msg("entity search failed")
		return nil
	}
	return match
}

func (s *WikidataSource) lookup(ctx context.Context, query string) (*types.ChemicalMatch, error) {
	params := url.Values{
		"action":   {"wbsearchentities"},
		"search":   {query},
		"language": {"en"},
		"format":   {"json"},
		"limit":    {"1"},
		"type":     {"item"},
	}

	resp, err := s.Client.Get(ctx, wikidataAPIBase+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("Wikidata search request: %w", err)
	}
	defer resp.Body.Close()

	var wr wikidataSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, fmt.Errorf("parsing Wikidata response: %w", err)
	}
	if len(wr.Search) == 0 {
		return nil, nil
	}

	entity := wr.Search[0]
	matched := entity.Label
	if matched == "" {
		matched = query
	}

	return &types.ChemicalMatch{
		ImageURL:    wikidataPageBase + entity.ID,
		Source:      types.SourceWikidata,
		MatchedName: matched,
	}, nil
}

// Wikidata wbsearchentities JSON structures.
type wikidataSearchResponse struct {
	Search []wikidataEntity `json:"search"`
}

type wikidataEntity struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
