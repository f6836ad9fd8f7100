// Package ledger owns the canonical in-memory set of expense records
// and the write-through mutation logic around it.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"spendbook/internal/core"
	"spendbook/internal/storage"
)

// Ledger mirrors the expenses table in memory. Every successful
// mutation re-reads the full set from the store; between the write and
// the reload the mirror is allowed to be stale. Not safe for concurrent
// use — all calls are expected from one goroutine, and overlapping
// operations resolve to whichever reload completed last.
type Ledger struct {
	store   storage.Store
	now     func() time.Time
	records []core.Expense
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the source of "today", used for defaulted dates
// and filter windows.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates a ledger over an explicitly injected store. The caller is
// responsible for reconciling the schema before first use.
func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{store: store, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load replaces the in-memory set with every record from the store,
// newest date first and, within a date, most recently created first.
func (l *Ledger) Load(ctx context.Context) error {
	rows, err := l.store.QueryAll(ctx,
		"SELECT id, amount, category, note, date FROM expenses ORDER BY date DESC, id DESC")
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load expenses", "error", err)
		return fmt.Errorf("load expenses: %w", err)
	}

	records := make([]core.Expense, 0, len(rows))
	for _, row := range rows {
		e, err := expenseFromRow(row)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to decode expense row", "error", err)
			return fmt.Errorf("load expenses: %w", err)
		}
		records = append(records, e)
	}
	l.records = records
	return nil
}

// Records returns a copy of the current in-memory set.
func (l *Ledger) Records() []core.Expense {
	out := make([]core.Expense, len(l.records))
	copy(out, l.records)
	return out
}

// Add validates the draft, inserts a new record and reloads. Identical
// records may coexist; the store hands out a fresh id either way.
// Validation failures never reach the store.
func (l *Ledger) Add(ctx context.Context, d core.Draft) error {
	e, err := d.Resolve(l.now())
	if err != nil {
		return err
	}

	if _, err := l.store.Execute(ctx,
		"INSERT INTO expenses (amount, category, note, date) VALUES (?, ?, ?, ?)",
		e.Amount.String(), e.Category, noteValue(e.Note), e.Date); err != nil {
		slog.ErrorContext(ctx, "Failed to insert expense",
			"category", e.Category, "date", e.Date, "error", err)
		return fmt.Errorf("add expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense added",
		"amount", e.Amount.String(), "category", e.Category, "date", e.Date)
	return l.Load(ctx)
}

// Update overwrites every field except id of the identified record and
// reloads. A missing id is a silent no-op: the store reports zero rows
// affected and the set is unchanged.
func (l *Ledger) Update(ctx context.Context, id int64, d core.Draft) error {
	e, err := d.Resolve(l.now())
	if err != nil {
		return err
	}

	n, err := l.store.Execute(ctx,
		"UPDATE expenses SET amount = ?, category = ?, note = ?, date = ? WHERE id = ?",
		e.Amount.String(), e.Category, noteValue(e.Note), e.Date, id)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to update expense", "id", id, "error", err)
		return fmt.Errorf("update expense: %w", err)
	}
	if n == 0 {
		slog.DebugContext(ctx, "Update matched no expense", "id", id)
	}
	return l.Load(ctx)
}

// Delete removes the identified record and reloads. Deleting a missing
// id is a no-op, not an error.
func (l *Ledger) Delete(ctx context.Context, id int64) error {
	n, err := l.store.Execute(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to delete expense", "id", id, "error", err)
		return fmt.Errorf("delete expense: %w", err)
	}
	if n > 0 {
		slog.InfoContext(ctx, "Expense deleted", "id", id)
	}
	return l.Load(ctx)
}

// View derives the filtered records and their aggregates for the mode
// against the current set and the current date. It recomputes on every
// call; nothing is cached.
func (l *Ledger) View(mode core.FilterMode) View {
	filtered := core.Apply(l.records, mode, l.now())
	return View{
		Mode:    mode,
		Records: filtered,
		Summary: core.Summarize(filtered),
	}
}

// View is one derived, render-ready snapshot.
type View struct {
	Mode    core.FilterMode
	Records []core.Expense
	Summary core.Summary
}

// noteValue maps an absent note to NULL in the store.
func noteValue(note string) any {
	if note == "" {
		return nil
	}
	return note
}
