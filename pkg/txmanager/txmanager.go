// Package txmanager runs functions inside database transactions. The
// transaction executor travels in the context (see pkg/dbmetrics), so
// repositories called from the function automatically join the transaction.
package txmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/drufus/serenity/pkg/dbmetrics"
)

// TxBeginner starts transactions. *dbmetrics.DB implements it directly; use
// FromDB to adapt a plain *sql.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager wraps functions in transactions of varying isolation
type TransactionManager struct {
	beginner TxBeginner
}

// NewTransactionManager creates a manager over the given beginner
func NewTransactionManager(beginner TxBeginner) *TransactionManager {
	return &TransactionManager{beginner: beginner}
}

// Do runs fn in a read-committed transaction
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable runs fn in a serializable transaction. Used for the booking
// write path where concurrent inserts must not interleave.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly runs fn in a read-only transaction
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.beginner.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}
	return nil
}

// FromDB adapts a plain *sql.DB into a TxBeginner
func FromDB(db *sql.DB) TxBeginner {
	return sqlBeginner{db: db}
}

type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}
