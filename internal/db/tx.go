// Package db holds small database/sql helpers shared by the stores.
package db

import (
	"context"
	"database/sql"
)

// WithTx runs fn in a transaction, committing when fn succeeds and rolling
// back otherwise.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Value returns the value of n, or the zero value for NULL.
func Value[T any](n sql.Null[T]) T {
	if !n.Valid {
		var zero T
		return zero
	}
	return n.V
}

// NullIfZero maps the zero value to NULL.
func NullIfZero[T comparable](v T) sql.Null[T] {
	var zero T
	return sql.Null[T]{V: v, Valid: v != zero}
}
