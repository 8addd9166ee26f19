// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/moleculab/chemscout/internal/chem"
	"github.com/moleculab/chemscout/internal/history"
	"github.com/moleculab/chemscout/internal/httputil"
	"github.com/moleculab/chemscout/internal/papers"
	"github.com/moleculab/chemscout/internal/pipeline"
)

// buildResolver assembles the chemical resolver from the enabled
// sources, in priority order.
func buildResolver(client *httputil.Client) *chem.Resolver {
	var sources []chem.Source
	if cfg.Chemical.EnablePubChem {
		sources = append(sources, &chem.PubChemSource{Client: client, Logger: logger})
	}
	if cfg.Chemical.EnableCactus {
		sources = append(sources, &chem.CactusSource{Client: client, Logger: logger})
	}
	if cfg.Chemical.EnableWikidata {
		sources = append(sources, &chem.WikidataSource{Client: client, Logger: logger})
	}
	return chem.NewResolver(logger, sources...)
}

// buildAggregator assembles the paper aggregator from the enabled
// sources.
func buildAggregator(client *httputil.Client) *papers.Aggregator {
	var sources []papers.Source
	if cfg.Papers.EnableSemanticScholar {
		sources = append(sources, &papers.SemanticScholarSource{
			Client: client,
			APIKey: cfg.Papers.SemanticScholarAPIKey,
			Logger: logger,
		})
	}
	if cfg.Papers.EnableCrossref {
		sources = append(sources, &papers.CrossrefSource{Client: client, Logger: logger})
	}
	if cfg.Papers.EnableArxiv {
		sources = append(sources, &papers.ArxivSource{Client: client, Logger: logger})
	}
	return papers.NewAggregator(logger, sources...)
}

// buildPipeline wires the full lookup pipeline. The returned cleanup
// closes the history store; callers must invoke it. When withHistory
// is false lookups are not recorded.
func buildPipeline(withHistory bool) (*pipeline.Pipeline, func(), error) {
	client := httputil.NewClient(cfg.HTTP)
	resolver := buildResolver(client)
	aggregator := buildAggregator(client)

	cleanup := func() {}
	var saver pipeline.HistorySaver
	if withHistory {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening history store: %w", err)
		}
		saver = store
		cleanup = func() { store.Close() }
	}

	return pipeline.New(resolver, aggregator, saver, cfg.Papers.CacheTTL, logger), cleanup, nil
}
