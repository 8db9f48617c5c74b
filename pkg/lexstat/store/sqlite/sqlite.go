// Package sqlite implements store.Store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	profile TEXT,
	started_at TEXT NOT NULL,
	blocks INTEGER NOT NULL,
	skipped INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_granularities (
	run_id TEXT NOT NULL,
	name TEXT NOT NULL,
	total INTEGER NOT NULL,
	distinct_units INTEGER NOT NULL,
	entropy_bits REAL NOT NULL,
	PRIMARY KEY (run_id, name),
	FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS run_topk (
	run_id TEXT NOT NULL,
	name TEXT NOT NULL,
	pos INTEGER NOT NULL,
	unit TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY (run_id, name, pos),
	FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun stores a run summary and its per-granularity results in one
// transaction.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.RunSummary) error {
	if r.ID == "" {
		return internalerr.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (id, profile, started_at, blocks, skipped)
		VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Profile, r.StartedAt.UTC().Format(time.RFC3339Nano), r.Blocks, r.Skipped)
	if err != nil {
		return fmt.Errorf("save run %s: %w", r.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM run_granularities WHERE run_id = ?`, r.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM run_topk WHERE run_id = ?`, r.ID); err != nil {
		return err
	}

	for _, g := range r.Granularities {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_granularities (run_id, name, total, distinct_units, entropy_bits)
			VALUES (?, ?, ?, ?, ?)`,
			r.ID, g.Name, g.Total, g.Distinct, g.Entropy)
		if err != nil {
			return fmt.Errorf("save granularity %s/%s: %w", r.ID, g.Name, err)
		}

		for i, uc := range g.TopK {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO run_topk (run_id, name, pos, unit, count)
				VALUES (?, ?, ?, ?, ?)`,
				r.ID, g.Name, i+1, uc.Unit, uc.Count)
			if err != nil {
				return fmt.Errorf("save topk %s/%s: %w", r.ID, g.Name, err)
			}
		}
	}

	return tx.Commit()
}

// GetRun loads one run summary by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.RunSummary, error) {
	var r store.RunSummary
	var startedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, profile, started_at, blocks, skipped FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.Profile, &startedAt, &r.Blocks, &r.Skipped)
	if err == sql.ErrNoRows {
		return store.RunSummary{}, internalerr.ErrNotFound
	}
	if err != nil {
		return store.RunSummary{}, err
	}
	if t, perr := time.Parse(time.RFC3339Nano, startedAt); perr == nil {
		r.StartedAt = t
	}

	if r.Granularities, err = s.loadGranularities(ctx, id); err != nil {
		return store.RunSummary{}, err
	}
	return r, nil
}

func (s *sqliteStore) loadGranularities(ctx context.Context, runID string) ([]store.GranularitySummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, total, distinct_units, entropy_bits
		FROM run_granularities WHERE run_id = ? ORDER BY name`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.GranularitySummary
	for rows.Next() {
		var g store.GranularitySummary
		if err := rows.Scan(&g.Name, &g.Total, &g.Distinct, &g.Entropy); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		topk, err := s.loadTopK(ctx, runID, out[i].Name)
		if err != nil {
			return nil, err
		}
		out[i].TopK = topk
	}
	return out, nil
}

func (s *sqliteStore) loadTopK(ctx context.Context, runID, name string) ([]store.UnitCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT unit, count FROM run_topk
		WHERE run_id = ? AND name = ? ORDER BY pos`, runID, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.UnitCount
	for rows.Next() {
		var uc store.UnitCount
		if err := rows.Scan(&uc.Unit, &uc.Count); err != nil {
			return nil, err
		}
		out = append(out, uc)
	}
	return out, rows.Err()
}

// ListRuns returns run summaries without top-k detail, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile, started_at, blocks, skipped
		FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.RunSummary
	for rows.Next() {
		var r store.RunSummary
		var startedAt string
		if err := rows.Scan(&r.ID, &r.Profile, &startedAt, &r.Blocks, &r.Skipped); err != nil {
			return nil, err
		}
		if t, perr := time.Parse(time.RFC3339Nano, startedAt); perr == nil {
			r.StartedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
