// Package storage provides the record store adapter and the startup
// schema reconciler for the expense table.
package storage

import (
	"context"
	"fmt"
)

// Row is one result row keyed by column name.
type Row map[string]any

// Store is the minimal contract the ledger needs from a persistent
// relational store: one statement per call, no transactions.
type Store interface {
	// QueryAll runs a statement and returns every result row.
	QueryAll(ctx context.Context, stmt string, args ...any) ([]Row, error)
	// Execute runs a DDL or DML statement and returns the number of
	// rows affected where the driver reports it.
	Execute(ctx context.Context, stmt string, args ...any) (int64, error)
}

// StoreError wraps any failure coming out of the store with the
// operation that produced it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
