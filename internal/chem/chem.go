// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chem resolves a user-supplied chemical name or identifier to a
// single best structure match across several chemical databases. Each
// database is one Source adapter; the Resolver fans out to all of them
// concurrently and picks the winner by fixed source priority so the
// outcome never depends on network timing.
package chem

import (
	"context"
	"net/url"

	"github.com/moleculab/chemscout/pkg/types"
)

// Source looks up one chemical database. Lookup returns nil both for "no
// match" and for any transport, status, or parse failure: adapters absorb
// their own faults and the fan-out layer only ever sees presence or
// absence of a result. A blank or whitespace-only query returns nil
// without any network call.
type Source interface {
	Name() string
	Lookup(ctx context.Context, query string) *types.ChemicalMatch
}

// SearchLink is a manual-search URL offered to the user when no source
// recognizes the query.
type SearchLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// ManualSearchLinks builds deterministic search-page URLs from the raw
// query, for the disambiguation hint shown when resolution fails.
func ManualSearchLinks(query string) []SearchLink {
	q := url.QueryEscape(query)
	return []SearchLink{
		{Name: "PubChem", URL: "https://pubchem.ncbi.nlm.nih.gov/#query=" + q},
		{Name: "Wikidata", URL: "https://www.wikidata.org/w/index.php?search=" + q},
	}
}
