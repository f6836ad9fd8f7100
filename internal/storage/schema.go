package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"spendbook/internal/core"
)

// TableName is the single table the ledger persists into.
const TableName = "expenses"

const createTableSQL = `
CREATE TABLE IF NOT EXISTS expenses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	amount DECIMAL(10,2) NOT NULL,
	category TEXT NOT NULL,
	note TEXT,
	date TEXT NOT NULL
)`

// Reconcile brings the expenses table to the expected five-column shape.
// It must run to completion before any ledger read or write, once per
// session:
//
//   - no table: create it fresh
//   - table without the date column: add the column, then backfill every
//     unset date with today so no row is left dateless
//   - table already current: nothing to do
//
// Any structural failure falls back to dropping and recreating the
// table; if that also fails the error is returned and the session runs
// without a usable store.
func Reconcile(ctx context.Context, store Store, today time.Time) error {
	cols, err := tableColumns(ctx, store)
	if err != nil {
		slog.WarnContext(ctx, "Table inspection failed, rebuilding", "table", TableName, "error", err)
		return rebuild(ctx, store)
	}

	switch {
	case len(cols) == 0:
		slog.InfoContext(ctx, "Creating expenses table", "table", TableName)
		if _, err := store.Execute(ctx, createTableSQL); err != nil {
			return rebuild(ctx, store)
		}
	case !cols["date"]:
		slog.InfoContext(ctx, "Adding date column to expenses table", "table", TableName)
		if err := addDateColumn(ctx, store, today); err != nil {
			slog.WarnContext(ctx, "Date column migration failed, rebuilding", "error", err)
			return rebuild(ctx, store)
		}
	default:
		slog.DebugContext(ctx, "Expenses table already current", "columns", len(cols))
	}
	return nil
}

// tableColumns returns the set of column names, empty when the table
// does not exist.
func tableColumns(ctx context.Context, store Store) (map[string]bool, error) {
	rows, err := store.QueryAll(ctx, fmt.Sprintf("PRAGMA table_info(%s)", TableName))
	if err != nil {
		return nil, err
	}
	cols := make(map[string]bool, len(rows))
	for _, r := range rows {
		name, ok := r["name"].(string)
		if !ok {
			return nil, fmt.Errorf("unexpected table_info row: %v", r)
		}
		cols[name] = true
	}
	return cols, nil
}

func addDateColumn(ctx context.Context, store Store, today time.Time) error {
	if _, err := store.Execute(ctx, "ALTER TABLE expenses ADD COLUMN date TEXT"); err != nil {
		return err
	}
	// Legacy rows may carry "" rather than NULL; backfill both.
	n, err := store.Execute(ctx,
		"UPDATE expenses SET date = ? WHERE date IS NULL OR date = ''",
		today.Format(core.DateLayout))
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "Backfilled expense dates", "rows", n, "date", today.Format(core.DateLayout))
	return nil
}

// rebuild is the destructive fallback: drop whatever is there and start
// over with the full layout.
func rebuild(ctx context.Context, store Store) error {
	if _, err := store.Execute(ctx, "DROP TABLE IF EXISTS expenses"); err != nil {
		return fmt.Errorf("drop expenses table: %w", err)
	}
	if _, err := store.Execute(ctx, createTableSQL); err != nil {
		return fmt.Errorf("recreate expenses table: %w", err)
	}
	slog.WarnContext(ctx, "Expenses table rebuilt from scratch", "table", TableName)
	return nil
}
