package store

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLite stores runs and cases in a single database file.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Migrate creates the schema if it does not exist yet.
func (s *SQLite) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			command TEXT NOT NULL,
			seed_from INTEGER NOT NULL,
			seed_to INTEGER NOT NULL,
			started_at DATETIME NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			cases INTEGER NOT NULL,
			accepted INTEGER NOT NULL,
			total INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cases (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			variance REAL NOT NULL,
			err_kind TEXT NOT NULL DEFAULT '',
			err_msg TEXT NOT NULL DEFAULT '',
			elapsed_ns INTEGER NOT NULL,
			PRIMARY KEY (run_id, seed)
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

// SaveRun writes run and its cases in one transaction and returns the run
// id. A fresh uuid is assigned when run.ID is empty.
//
// Seeds are unsigned 64-bit values; they are stored as the signed integer
// with the same bit pattern.
func (s *SQLite) SaveRun(ctx context.Context, run Run, cases []Case) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, command, seed_from, seed_to, started_at, elapsed_ns, cases, accepted, total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Command, int64(run.SeedFrom), int64(run.SeedTo),
		run.StartedAt.UTC(), int64(run.Elapsed), run.Cases, run.Accepted, run.Total,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cases (run_id, seed, score, variance, err_kind, err_msg, elapsed_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare case insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cases {
		if _, err := stmt.ExecContext(ctx, run.ID, int64(c.Seed), c.Score, c.Variance, c.ErrKind, c.ErrMsg, int64(c.Elapsed)); err != nil {
			return "", fmt.Errorf("failed to insert case for seed %d: %w", c.Seed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return run.ID, nil
}

// GetRun loads a run header by id.
func (s *SQLite) GetRun(ctx context.Context, id string) (Run, error) {
	var (
		r         Run
		seedFrom  int64
		seedTo    int64
		elapsedNS int64
		started   time.Time
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, command, seed_from, seed_to, started_at, elapsed_ns, cases, accepted, total
		FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Command, &seedFrom, &seedTo, &started, &elapsedNS, &r.Cases, &r.Accepted, &r.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to query run: %w", err)
	}

	r.SeedFrom = uint64(seedFrom)
	r.SeedTo = uint64(seedTo)
	r.StartedAt = started
	r.Elapsed = time.Duration(elapsedNS)
	return r, nil
}

// Cases returns the cases of a run ordered by seed.
func (s *SQLite) Cases(ctx context.Context, runID string) ([]Case, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, seed, score, variance, err_kind, err_msg, elapsed_ns
		FROM cases WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer rows.Close()

	var out []Case
	for rows.Next() {
		var (
			c         Case
			seed      int64
			elapsedNS int64
		)
		if err := rows.Scan(&c.RunID, &seed, &c.Score, &c.Variance, &c.ErrKind, &c.ErrMsg, &elapsedNS); err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		c.Seed = uint64(seed)
		c.Elapsed = time.Duration(elapsedNS)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cases: %w", err)
	}

	sortBySeed(out)
	return out, nil
}

// sortBySeed orders cases by unsigned seed; SQL ordering would compare the
// stored signed values.
func sortBySeed(cases []Case) {
	slices.SortFunc(cases, func(a, b Case) int {
		return cmp.Compare(a.Seed, b.Seed)
	})
}
