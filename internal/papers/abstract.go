// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"html"
	"regexp"
	"strings"

	"github.com/moleculab/chemscout/pkg/types"
)

// tagPattern matches HTML/XML tags; Crossref abstracts arrive as JATS
// fragments and some feeds embed markup in summaries.
var tagPattern = regexp.MustCompile(`<[^<]+?>`)

// cleanAbstract strips tags, unescapes entities, and trims. Anything that
// ends up empty becomes the NoAbstract sentinel so the field is always
// populated.
func cleanAbstract(raw string) string {
	clean := strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(raw, "")))
	if clean == "" {
		return types.NoAbstract
	}
	return clean
}

// joinAuthors builds the comma-joined display list, UnknownAuthors when
// no usable names remain.
func joinAuthors(names []string) string {
	var kept []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return types.UnknownAuthors
	}
	return strings.Join(kept, ", ")
}
