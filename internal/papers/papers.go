// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package papers queries literature APIs and merges their results into a
// unified, deduplicated, recency-ordered list. Each API is one Source
// adapter mapping its native JSON or XML schema into the shared
// PaperRecord shape; the Aggregator fans out to all of them concurrently
// and tolerates any subset failing.
package papers

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/internal/fanout"
	"github.com/moleculab/chemscout/pkg/types"
)

// DefaultLimit caps the merged result list when the caller does not.
const DefaultLimit = 10

// Source searches one literature API. Search returns nil both for "no
// results" and for any transport, status, or parse failure: adapters
// absorb their own faults. A blank query returns nil without a network
// call. Implementations return at most limit records.
type Source interface {
	Name() string
	Search(ctx context.Context, query string, limit int) []types.PaperRecord
}

// Aggregator merges multi-source paper results.
type Aggregator struct {
	sources []Source
	logger  zerolog.Logger
}

// NewAggregator builds an Aggregator over the given sources.
func NewAggregator(logger zerolog.Logger, sources ...Source) *Aggregator {
	return &Aggregator{
		sources: sources,
		logger:  logger.With().Str("component", "paper-aggregator").Logger(),
	}
}

// sourceResult carries one source's records together with its
// registration index, so the merge order is independent of which source
// answered first.
type sourceResult struct {
	idx     int
	records []types.PaperRecord
}

// Search fans the query out to every source concurrently, merges the
// results in source registration order, deduplicates by normalized title,
// sorts by year descending with unknown years last, and truncates to
// limit. Identical source responses always produce an identical list:
// completion timing never leaks into the output. An empty return is "no
// papers found", never an error: sources that fail or come back empty
// simply contribute nothing.
func (a *Aggregator) Search(ctx context.Context, query string, limit int) []types.PaperRecord {
	query = strings.TrimSpace(query)
	if query == "" || len(a.sources) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	tasks := make([]fanout.Task[sourceResult], len(a.sources))
	for i, src := range a.sources {
		i, src := i, src
		tasks[i] = func(ctx context.Context) (sourceResult, bool) {
			records := src.Search(ctx, query, limit)
			return sourceResult{idx: i, records: records}, len(records) > 0
		}
	}

	// Collect into per-source slots, then concatenate in registration
	// order so dedup and sorting see a deterministic sequence.
	slots := make([][]types.PaperRecord, len(a.sources))
	for res := range fanout.Stream(ctx, tasks, len(a.sources)) {
		slots[res.idx] = res.records
	}
	var all []types.PaperRecord
	for _, records := range slots {
		all = append(all, records...)
	}

	merged := dedupeByTitle(all)
	sortByYearDesc(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}

	a.logger.Debug().Str("query", query).Int("collected", len(all)).
		Int("returned", len(merged)).Msg("paper aggregation complete")
	return merged
}

// dedupeByTitle keeps one record per normalized title, last seen wins.
// With input in source registration order this means the last-registered
// source's record survives. Untitled records are unusable and dropped.
func dedupeByTitle(records []types.PaperRecord) []types.PaperRecord {
	seen := make(map[string]int) // normalized title → index in out
	var out []types.PaperRecord

	for _, r := range records {
		key := normalizeTitle(r.Title)
		if key == "" {
			continue
		}
		if idx, ok := seen[key]; ok {
			out[idx] = r
			continue
		}
		seen[key] = len(out)
		out = append(out, r)
	}
	return out
}

// normalizeTitle is the dedup key: trimmed and case-folded.
func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// sortByYearDesc orders newest first. Year 0 means unknown and therefore
// sorts after every real year.
func sortByYearDesc(records []types.PaperRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Year > records[j].Year
	})
}
