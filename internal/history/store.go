// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists generated rows in a SQLite database so repeated
// runs can skip already-covered emails and past output can be queried.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/linkscout/pkg/types"
)

const defaultMaxResults = 50

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the history database at cfg.DBPath, creating the
// parent directory and schema as needed.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started TEXT NOT NULL,
			input_path TEXT,
			org TEXT,
			row_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS links (
			email TEXT PRIMARY KEY,
			surname_hint TEXT NOT NULL,
			query TEXT NOT NULL,
			google TEXT NOT NULL,
			bing TEXT NOT NULL,
			yandex TEXT NOT NULL,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			created TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_links_run_id ON links(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Known returns the set of emails already recorded.
func (s *Store) Known(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT email FROM links`)
	if err != nil {
		return nil, fmt.Errorf("querying known emails: %w", err)
	}
	defer rows.Close()

	known := make(map[string]struct{})
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scanning known email: %w", err)
		}
		known[email] = struct{}{}
	}
	return known, rows.Err()
}

// RunMeta describes the run being recorded.
type RunMeta struct {
	InputPath string
	Org       string
}

// RecordRun inserts a run record and all its rows in one transaction.
// A re-generated email replaces its previous entry, pointing at the new
// run, so the store always holds the latest links per address.
func (s *Store) RecordRun(ctx context.Context, meta RunMeta, rows []types.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting history transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started, input_path, org, row_count) VALUES (?, ?, ?, ?)`,
		now, meta.InputPath, meta.Org, len(rows))
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO links (email, surname_hint, query, google, bing, yandex, run_id, created)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			surname_hint = excluded.surname_hint,
			query = excluded.query,
			google = excluded.google,
			bing = excluded.bing,
			yandex = excluded.yandex,
			run_id = excluded.run_id,
			created = excluded.created`)
	if err != nil {
		return fmt.Errorf("preparing link insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx,
			row.Email, row.SurnameHint, row.Query,
			row.Google, row.Bing, row.Yandex, runID, now); err != nil {
			return fmt.Errorf("recording %s: %w", row.Email, err)
		}
	}

	return tx.Commit()
}

// ListOptions filters List output.
type ListOptions struct {
	// Email filters by substring match on the address.
	Email string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Entry is a recorded row plus its run timestamp.
type Entry struct {
	types.Row `yaml:",inline"`
	Created   string `json:"created" yaml:"created"`
}

// List returns recorded rows, most recent first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	q := `SELECT email, surname_hint, query, google, bing, yandex, created FROM links`
	var args []any
	if opts.Email != "" {
		q += ` WHERE email LIKE ?`
		args = append(args, "%"+opts.Email+"%")
	}
	q += ` ORDER BY created DESC, email LIMIT ?`
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Email, &e.SurnameHint, &e.Query,
			&e.Google, &e.Bing, &e.Yandex, &e.Created); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes all recorded rows and runs.
func (s *Store) Clear(ctx context.Context) error {
	for _, stmt := range []string{`DELETE FROM links`, `DELETE FROM runs`} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
	}
	return nil
}
