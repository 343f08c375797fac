package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
	"github.com/ericfisherdev/stalesweep/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.StateStore = (*StateRepo)(nil)

const lastRunKey = "last_run"

// StateRepo is the SQLite implementation of the StateStore port interface.
type StateRepo struct {
	db *DB
}

// NewStateRepo creates a new StateRepo backed by the given DB.
func NewStateRepo(db *DB) *StateRepo {
	return &StateRepo{db: db}
}

// Restore loads the previous run's state. A fresh database yields an empty
// RunState, not an error.
func (r *StateRepo) Restore(ctx context.Context) (*model.RunState, error) {
	state := model.NewRunState()

	var lastRun string
	err := r.db.Conn.QueryRowContext(ctx,
		`SELECT value FROM run_meta WHERE key = ?`, lastRunKey,
	).Scan(&lastRun)
	switch {
	case err == nil:
		t, parseErr := time.Parse(time.RFC3339, lastRun)
		if parseErr != nil {
			return nil, fmt.Errorf("parse last run time %q: %w", lastRun, parseErr)
		}
		state.LastRun = t
	case errors.Is(err, sql.ErrNoRows):
		// First run against this database.
	default:
		return nil, fmt.Errorf("read last run time: %w", err)
	}

	rows, err := r.db.Conn.QueryContext(ctx, `SELECT number, marked_at FROM stale_marks`)
	if err != nil {
		return nil, fmt.Errorf("list stale marks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var number int
		var markedAt string
		if err := rows.Scan(&number, &markedAt); err != nil {
			return nil, fmt.Errorf("scan stale mark: %w", err)
		}
		t, err := time.Parse(time.RFC3339, markedAt)
		if err != nil {
			return nil, fmt.Errorf("parse marked_at for #%d: %w", number, err)
		}
		state.MarkStale(number, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stale marks: %w", err)
	}

	return state, nil
}

// Persist saves the state produced by this run, replacing the prior one in
// a single transaction.
func (r *StateRepo) Persist(ctx context.Context, state *model.RunState) error {
	tx, err := r.db.Conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin persist: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO run_meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastRunKey, state.LastRun.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("write last run time: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM stale_marks`); err != nil {
		return fmt.Errorf("clear stale marks: %w", err)
	}

	for number, markedAt := range state.MarkedStale {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO stale_marks (number, marked_at) VALUES (?, ?)`,
			number, markedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("write stale mark #%d: %w", number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit persist: %w", err)
	}

	return nil
}
