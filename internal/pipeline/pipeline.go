// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a full lookup: resolve the chemical,
// record a successful resolution in the history, then fetch related
// papers using the best name we found. Each stage degrades
// independently; a lookup never fails outright because one upstream did.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/internal/cache"
	"github.com/moleculab/chemscout/internal/chem"
	"github.com/moleculab/chemscout/pkg/types"
)

// Resolver finds a structure match for a chemical name.
type Resolver interface {
	Resolve(ctx context.Context, query string) *types.ChemicalMatch
}

// Searcher finds papers for a search term.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) []types.PaperRecord
}

// HistorySaver records one lookup. May be nil when history is disabled.
type HistorySaver interface {
	Save(ctx context.Context, e types.HistoryEntry) error
}

// Outcome is everything one lookup produced.
type Outcome struct {
	Query       string               `json:"query" yaml:"query"`
	SearchTerm  string               `json:"search_term" yaml:"search_term"`
	Match       *types.ChemicalMatch `json:"match,omitempty" yaml:"match,omitempty"`
	Papers      []types.PaperRecord  `json:"papers" yaml:"papers"`
	ManualLinks []chem.SearchLink    `json:"manual_links,omitempty" yaml:"manual_links,omitempty"`
}

// Pipeline wires the stages together.
type Pipeline struct {
	resolver Resolver
	searcher Searcher
	history  HistorySaver
	cache    *cache.Cache[[]types.PaperRecord]
	logger   zerolog.Logger
}

// New builds a pipeline. history may be nil; cacheTTL <= 0 disables
// the paper-result cache.
func New(resolver Resolver, searcher Searcher, history HistorySaver, cacheTTL time.Duration, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		searcher: searcher,
		history:  history,
		cache:    cache.New[[]types.PaperRecord](cacheTTL),
		logger:   logger,
	}
}

// Run performs one lookup. A blank query returns an empty Outcome with
// no upstream traffic.
func (p *Pipeline) Run(ctx context.Context, query string, limit int) Outcome {
	out := Outcome{Query: query}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return out
	}

	match := p.resolver.Resolve(ctx, trimmed)
	out.Match = match

	// Papers are searched under the resolved name when we have one;
	// the raw query otherwise.
	out.SearchTerm = trimmed
	if match != nil && match.MatchedName != "" {
		out.SearchTerm = match.MatchedName
	}

	// Only resolved lookups are recorded; a total miss leaves the
	// history untouched and yields manual search links instead.
	if match != nil {
		p.record(ctx, trimmed, match)
	} else {
		out.ManualLinks = chem.ManualSearchLinks(trimmed)
	}

	out.Papers = p.searchPapers(ctx, out.SearchTerm, limit)
	return out
}

func (p *Pipeline) record(ctx context.Context, query string, match *types.ChemicalMatch) {
	if p.history == nil {
		return
	}

	entry := types.HistoryEntry{
		InputName:   query,
		MatchedName: match.MatchedName,
		CID:         match.CID,
		ImageURL:    match.ImageURL,
		SearchedAt:  time.Now().UTC(),
	}

	// History is best-effort; a write failure never fails the lookup.
	if err := p.history.Save(ctx, entry); err != nil {
		p.logger.Warn().Err(err).Str("query", query).Msg("failed to save search history")
	}
}

func (p *Pipeline) searchPapers(ctx context.Context, term string, limit int) []types.PaperRecord {
	key := fmt.Sprintf("%s|%d", strings.ToLower(term), limit)
	if records, ok := p.cache.Get(key); ok {
		p.logger.Debug().Str("term", term).Msg("paper cache hit")
		return records
	}

	records := p.searcher.Search(ctx, term, limit)
	if len(records) > 0 {
		p.cache.Set(key, records)
	}
	return records
}
