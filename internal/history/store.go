// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists recent chemical searches in a local SQLite
// database. The pipeline appends one entry per successful resolution;
// the presentation layer reads and clears.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/moleculab/chemscout/pkg/types"
)

// DefaultPath is where the history database lives unless configured.
const DefaultPath = "data/chemicals.db"

// Store manages the search-history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS chemicals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input_name TEXT,
			matched_name TEXT,
			cid TEXT,
			image_url TEXT,
			searched_at TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_searched_at ON chemicals(searched_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save appends one entry. An empty CID is stored as the not-found
// sentinel; a zero timestamp becomes the current UTC time.
func (s *Store) Save(ctx context.Context, e types.HistoryEntry) error {
	cid := e.CID
	if cid == "" {
		cid = types.HistoryCIDNotFound
	}
	at := e.SearchedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chemicals (input_name, matched_name, cid, image_url, searched_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.InputName, e.MatchedName, cid, e.ImageURL, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("saving history entry: %w", err)
	}
	return nil
}

// Load returns up to limit entries, most recent first.
func (s *Store) Load(ctx context.Context, limit int) ([]types.HistoryEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT input_name, matched_name, cid, image_url, searched_at
		 FROM chemicals ORDER BY searched_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var e types.HistoryEntry
		var at string
		if err := rows.Scan(&e.InputName, &e.MatchedName, &e.CID, &e.ImageURL, &at); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, at); parseErr == nil {
			e.SearchedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chemicals`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
