package report

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is stored in PRAGMA user_version. Bump it when schema.sql
// changes shape.
const schemaVersion = 1

// historyTables must all exist in a usable run history.
var historyTables = []string{"runs", "run_records", "run_pairs"}

// ErrSchemaMismatch reports a run history that this build cannot read.
var ErrSchemaMismatch = errors.New("run history schema mismatch")

// migrate creates the history tables in a fresh database and checks an
// existing one. SQLite reports user_version 0 for a file it just created.
func (s *Store) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read run history version: %w", err)
	}

	switch version {
	case 0:
		return s.createTables(ctx)
	case schemaVersion:
		return s.checkTables(ctx)
	default:
		return fmt.Errorf("%w: %s has version %d, this build reads version %d (move it aside to start a new history)",
			ErrSchemaMismatch, s.path, version, schemaVersion)
	}
}

func (s *Store) createTables(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create run history tables: %w", err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("stamp run history version: %w", err)
	}
	return tx.Commit()
}

func (s *Store) checkTables(ctx context.Context) error {
	for _, table := range historyTables {
		var n int
		err := s.db.QueryRowContext(ctx,
			"SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&n)
		if err != nil {
			return fmt.Errorf("inspect run history: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s is missing table %s", ErrSchemaMismatch, s.path, table)
		}
	}
	return nil
}
