// Package journal records the outcome of each monitor run in SQLite.
// It is observability only: pipeline behavior never depends on it.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Run outcomes.
const (
	OutcomeSent   = "sent"
	OutcomeNoop   = "noop"
	OutcomeFailed = "failed"
)

// Run is one recorded monitor pass.
type Run struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	Outcome    string
	NewItems   int
	Error      string // set for failed runs
}

// Store persists run history.
type Store struct {
	db *sql.DB
}

// Open opens the journal database at path, creating the parent directory
// and applying migrations as needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("path is required")
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts one run row.
func (s *Store) Record(ctx context.Context, run Run) error {
	if s == nil || s.db == nil {
		return errors.New("journal is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	switch run.Outcome {
	case OutcomeSent, OutcomeNoop, OutcomeFailed:
	default:
		return fmt.Errorf("unknown outcome %q", run.Outcome)
	}
	if run.StartedAt.IsZero() {
		return errors.New("started_at is required")
	}
	if run.FinishedAt.IsZero() {
		return errors.New("finished_at is required")
	}

	var errVal sql.NullString
	if run.Error != "" {
		errVal = sql.NullString{String: run.Error, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (started_at, finished_at, outcome, new_items, error)
		VALUES (?, ?, ?, ?, ?)
	`,
		formatTime(run.StartedAt),
		formatTime(run.FinishedAt),
		run.Outcome,
		run.NewItems,
		errVal,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("journal is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, outcome, new_items, error
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var runs []Run
	for rows.Next() {
		var (
			run                   Run
			startedAt, finishedAt string
			errVal                sql.NullString
		)
		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Outcome, &run.NewItems, &errVal); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt, err = parseTime(startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		run.FinishedAt, err = parseTime(finishedAt)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		if errVal.Valid {
			run.Error = errVal.String
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// Prune deletes runs older than keepDays. Returns the number removed.
func (s *Store) Prune(ctx context.Context, keepDays int) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("journal is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if keepDays <= 0 {
		return 0, nil
	}

	cutoff := formatTime(time.Now().AddDate(0, 0, -keepDays))
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE started_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, value)
}
