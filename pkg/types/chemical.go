// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the chemscout lookup
// pipeline: the chemical match produced by the resolver, the paper record
// produced by the literature aggregator, the persisted history entry, and
// the configuration blocks consumed by each component.
package types

import "time"

// ChemicalSource identifies which adapter produced a ChemicalMatch.
type ChemicalSource string

const (
	SourcePubChem  ChemicalSource = "pubchem"
	SourceCactus   ChemicalSource = "cactus"
	SourceWikidata ChemicalSource = "wikidata"
)

// ChemicalMatch is the single best structure match for a user query.
// A nil *ChemicalMatch means no source recognized the query; a non-nil
// match always carries a non-empty MatchedName, and whenever CID is set
// ImageURL is set as well.
type ChemicalMatch struct {
	// CID is the PubChem compound identifier, empty when the source
	// does not assign one.
	CID string `json:"cid,omitempty" yaml:"cid,omitempty"`

	// ImageURL is the structure image (or entity page) for the match.
	ImageURL string `json:"image_url,omitempty" yaml:"image_url,omitempty"`

	// Source identifies the adapter that produced this match.
	Source ChemicalSource `json:"source" yaml:"source"`

	// MatchedName is the canonical name used as the downstream paper
	// search term (IUPAC name from PubChem, entity label from Wikidata,
	// or the query itself for sources that never rename).
	MatchedName string `json:"matched_name" yaml:"matched_name"`
}

// HistoryEntry is one persisted search, most recent first on load.
type HistoryEntry struct {
	InputName   string    `json:"input_name" yaml:"input_name"`
	MatchedName string    `json:"matched_name" yaml:"matched_name"`
	CID         string    `json:"cid" yaml:"cid"`
	ImageURL    string    `json:"image_url" yaml:"image_url"`
	SearchedAt  time.Time `json:"searched_at" yaml:"searched_at"`
}

// HistoryCIDNotFound is stored in place of a CID when the matched source
// did not assign one.
const HistoryCIDNotFound = "N/A"
