// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NoAbstract is the sentinel stored when a source returns no usable
// abstract text.
const NoAbstract = "No abstract available."

// UnknownAuthors is the display value when a source lists no authors.
const UnknownAuthors = "N/A"

// PaperRecord is the normalized shape every literature source maps its
// native response into. Title is the deduplication key: two records whose
// titles are equal after trimming and case-folding are the same paper.
type PaperRecord struct {
	// Title is the paper title as returned by the source, trimmed.
	Title string `json:"title" yaml:"title"`

	// Authors is a comma-joined display list, UnknownAuthors when the
	// source lists none.
	Authors string `json:"authors" yaml:"authors"`

	// Year is the publication year, 0 when unknown. Unknown years sort
	// after every real year.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// URL is the landing page for the paper, possibly empty.
	URL string `json:"url" yaml:"url"`

	// Abstract is tag-stripped, entity-unescaped abstract text. Never
	// empty: sources without one get NoAbstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// PDFURL links the full text when the source exposes or implies one.
	PDFURL string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`

	// Source identifies which adapter found this record
	// (e.g. "semantic_scholar", "crossref", "arxiv").
	Source string `json:"source" yaml:"source"`
}
