// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chem

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/internal/fanout"
	"github.com/moleculab/chemscout/pkg/types"
)

// Resolver fans a query out to every configured chemical source and picks
// one authoritative match by static priority: the registration order of
// its sources. Priority, not first-completed, decides the winner, so the
// resolver waits for every outcome before answering.
type Resolver struct {
	sources []Source
	logger  zerolog.Logger
}

// NewResolver builds a Resolver. Sources are given in descending
// priority order.
func NewResolver(logger zerolog.Logger, sources ...Source) *Resolver {
	return &Resolver{
		sources: sources,
		logger:  logger.With().Str("component", "chem-resolver").Logger(),
	}
}

// Resolve returns the best match for query, or nil when no source
// recognizes it. All sources run concurrently; each is bounded only by
// its own call timeout.
func (r *Resolver) Resolve(ctx context.Context, query string) *types.ChemicalMatch {
	query = strings.TrimSpace(query)
	if query == "" || len(r.sources) == 0 {
		return nil
	}

	tasks := make([]fanout.Task[*types.ChemicalMatch], len(r.sources))
	for i, src := range r.sources {
		src := src
		tasks[i] = func(ctx context.Context) (*types.ChemicalMatch, bool) {
			m := src.Lookup(ctx, query)
			return m, m != nil
		}
	}

	// The tie-break needs every outcome, so drain the stream fully.
	bySource := make(map[string]*types.ChemicalMatch)
	for m := range fanout.Stream(ctx, tasks, len(r.sources)) {
		bySource[string(m.Source)] = m
	}

	for _, src := range r.sources {
		if m, ok := bySource[src.Name()]; ok {
			r.logger.Debug().Str("source", src.Name()).Str("matched_name", m.MatchedName).
				Str("query", query).Msg("chemical resolved")
			return m
		}
	}

	r.logger.Info().Str("query", query).Msg("no chemical source matched")
	return nil
}
