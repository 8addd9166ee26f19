// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chem

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/internal/httputil"
	"github.com/moleculab/chemscout/pkg/types"
)

// API endpoints, declared as vars so tests can substitute httptest servers.
var (
	pubchemAPIBase  = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	cactusImageBase = "https://cactus.nci.nih.gov/chemical/structure"
)

// PubChemSource is the primary chemical adapter. It resolves a name or
// CAS number to a PubChem CID, then resolves the CID to its IUPAC name.
type PubChemSource struct {
	Client *httputil.Client
	Logger zerolog.Logger
}

// Name returns the source identifier.
func (s *PubChemSource) Name() string { return string(types.SourcePubChem) }

// Lookup implements Source.
func (s *PubChemSource) Lookup(ctx context.Context, query string) *types.ChemicalMatch {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	match, err := s.lookup(ctx, query)
	if err != nil {
		s.Logger.Warn().Err(err).Str("source", s.Name()).Str("query", query).
			Msg("chemical lookup failed")
		return nil
	}
	return match
}

func (s *PubChemSource) lookup(ctx context.Context, query string) (*types.ChemicalMatch, error) {
	cid, err := s.fetchCID(ctx, query)
	if err != nil {
		return nil, err
	}
	if cid == "" {
		// Well-formed response with no CID: not a failure, just no match.
		return nil, nil
	}

	// A failed name resolution falls back to the query text rather than
	// failing the whole lookup.
	matched, err := s.fetchIUPACName(ctx, cid)
	if err != nil || matched == "" {
		if err != nil {
			s.Logger.Debug().Err(err).Str("cid", cid).
				Msg("IUPAC name resolution failed, keeping query text")
		}
		matched = query
	}

	return &types.ChemicalMatch{
		CID:         cid,
		ImageURL:    structureImageURL(matched),
		Source:      types.SourcePubChem,
		MatchedName: matched,
	}, nil
}

func (s *PubChemSource) fetchCID(ctx context.Context, query string) (string, error) {
	u := fmt.Sprintf("%s/compound/name/%s/cids/JSON", pubchemAPIBase, url.PathEscape(query))
	resp, err := s.Client.Get(ctx, u)
	if err != nil {
		return "", fmt.Errorf("PubChem CID request: %w", err)
	}
	defer resp.Body.Close()

	var cr pubchemCIDResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("parsing PubChem CID response: %w", err)
	}
	if len(cr.IdentifierList.CID) == 0 {
		return "", nil
	}
	return strconv.FormatInt(cr.IdentifierList.CID[0], 10), nil
}

func (s *PubChemSource) fetchIUPACName(ctx context.Context, cid string) (string, error) {
	u := fmt.Sprintf("%s/compound/cid/%s/property/IUPACName/JSON", pubchemAPIBase, cid)
	resp, err := s.Client.Get(ctx, u)
	if err != nil {
		return "", fmt.Errorf("PubChem property request: %w", err)
	}
	defer resp.Body.Close()

	var pr pubchemPropertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("parsing PubChem property response: %w", err)
	}
	if len(pr.PropertyTable.Properties) == 0 {
		return "", nil
	}
	return pr.PropertyTable.Properties[0].IUPACName, nil
}

// structureImageURL builds the deterministic Cactus structure-image URL
// for a chemical name.
func structureImageURL(name string) string {
	return cactusImageBase + "/" + url.PathEscape(name) + "/image"
}

// PubChem PUG REST JSON structures.
type pubchemCIDResponse struct {
	IdentifierList struct {
		CID []int64 `json:"CID"`
	} `json:"IdentifierList"`
}

type pubchemPropertyResponse struct {
	PropertyTable struct {
		Properties []struct {
			CID       int64  `json:"CID"`
			IUPACName string `json:"IUPACName"`
		} `json:"Properties"`
	} `json:"PropertyTable"`
}
