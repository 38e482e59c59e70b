package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"camlink/internal/blocking"
	"camlink/internal/identification"
)

// Run summarizes one match run.
type Run struct {
	ID              string
	StartedAt       time.Time
	DatasetDir      string
	Records         int
	Solved          int
	Unsolved        int
	Malformed       int
	Pairs           int
	SolvedPairs     int
	UnsolvedPairs   int
	ResolveDuration time.Duration
	BlockDuration   time.Duration
}

// timestampLayout has a fixed width so started_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Store keeps the run history in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the run database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// SaveRun records a run with its resolved records and final pairs in one
// transaction.
func (s *Store) SaveRun(ctx context.Context, run Run, records []identification.Record, pairs []blocking.Pair) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, started_at, dataset_dir, records, solved, unsolved, malformed,
            pairs, solved_pairs, unsolved_pairs, resolve_ms, blocking_ms
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(timestampLayout),
		run.DatasetDir,
		run.Records,
		run.Solved,
		run.Unsolved,
		run.Malformed,
		run.Pairs,
		run.SolvedPairs,
		run.UnsolvedPairs,
		run.ResolveDuration.Milliseconds(),
		run.BlockDuration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	recordStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_records (run_id, record_id, brand, model, normalized_title, solved) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare record insert: %w", err)
	}
	defer recordStmt.Close()
	for _, record := range records {
		if _, err := recordStmt.ExecContext(ctx, run.ID, record.ID, record.Brand, record.Model, record.NormalizedTitle, boolToInt(record.Solved())); err != nil {
			return fmt.Errorf("insert record %s: %w", record.ID, err)
		}
	}

	pairStmt, err := tx.PrepareContext(ctx, `INSERT INTO run_pairs (run_id, left_id, right_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare pair insert: %w", err)
	}
	defer pairStmt.Close()
	for _, pair := range pairs {
		if _, err := pairStmt.ExecContext(ctx, run.ID, pair.Left, pair.Right); err != nil {
			return fmt.Errorf("insert pair %s,%s: %w", pair.Left, pair.Right, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

const runColumns = `id, started_at, dataset_dir, records, solved, unsolved, malformed,
    pairs, solved_pairs, unsolved_pairs, resolve_ms, blocking_ms`

// Runs returns up to limit runs, newest first. A non-positive limit returns all runs.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// LatestRun returns the most recent run, or nil when none was recorded.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, id LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Pairs returns the pairs recorded for runID, sorted by left then right id.
func (s *Store) Pairs(ctx context.Context, runID string) ([]blocking.Pair, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT left_id, right_id FROM run_pairs WHERE run_id = ? ORDER BY left_id, right_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list pairs: %w", err)
	}
	defer rows.Close()

	var pairs []blocking.Pair
	for rows.Next() {
		var pair blocking.Pair
		if err := rows.Scan(&pair.Left, &pair.Right); err != nil {
			return nil, fmt.Errorf("scan pair: %w", err)
		}
		pairs = append(pairs, pair)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pairs: %w", err)
	}
	return pairs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run        Run
		startedAt  string
		resolveMS  int64
		blockingMS int64
	)
	err := row.Scan(
		&run.ID, &startedAt, &run.DatasetDir, &run.Records, &run.Solved, &run.Unsolved, &run.Malformed,
		&run.Pairs, &run.SolvedPairs, &run.UnsolvedPairs, &resolveMS, &blockingMS,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.StartedAt, err = time.Parse(timestampLayout, startedAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse started_at %q: %w", startedAt, err)
	}
	run.ResolveDuration = time.Duration(resolveMS) * time.Millisecond
	run.BlockDuration = time.Duration(blockingMS) * time.Millisecond
	return run, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
