// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/moleculab/chemscout/pkg/types"
)

// ResultFile is the on-disk representation of one lookup and its results.
// A search can be saved to a file and reloaded later without re-querying
// the APIs.
type ResultFile struct {
	Query      string               `yaml:"query"`
	SearchTerm string               `yaml:"search_term"`
	Chemical   *types.ChemicalMatch `yaml:"chemical,omitempty"`
	Papers     []types.PaperRecord  `yaml:"papers"`
	Summary    ResultSummary        `yaml:"summary"`
}

// ResultSummary stores result statistics and a timestamp.
type ResultSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves a lookup outcome to a YAML file.
func WriteResultFile(path, query, searchTerm string, chemical *types.ChemicalMatch, records []types.PaperRecord) error {
	rf := ResultFile{
		Query:      query,
		SearchTerm: searchTerm,
		Chemical:   chemical,
		Papers:     records,
		Summary: ResultSummary{
			Total:     len(records),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
