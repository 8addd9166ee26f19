// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chem

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/internal/httputil"
	"github.com/moleculab/chemscout/pkg/types"
)

// CactusSource is the fallback chemical adapter. It probes the NCI Cactus
// structure-image endpoint with a HEAD request: a 200 means the service
// can draw the structure for the query as given. This adapter never
// renames and never assigns a CID.
type CactusSource struct {
	Client *httputil.Client
	Logger zerolog.Logger
}

// Name returns the source identifier.
func (s *CactusSource) Name() string { return string(types.SourceCactus) }

// Lookup implements Source.
func (s *CactusSource) Lookup(ctx context.Context, query string) *types.ChemicalMatch {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	imageURL := structureImageURL(query)
	resp, err := s.Client.Head(ctx, imageURL)
	if err != nil {
		s.Logger.Debug().Err(err).Str("source", s.Name()).Str("query", query).
			Msg("structure probe failed")
		return nil
	}
	resp.Body.Close()

	return &types.ChemicalMatch{
		ImageURL:    imageURL,
		Source:      types.SourceCactus,
		MatchedName: query,
	}
}
