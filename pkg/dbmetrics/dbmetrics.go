// Package dbmetrics provides the database executor abstraction shared by all
// repositories. It serves two purposes: transparently routing queries through
// an active transaction carried in the context, and (optionally) instrumenting
// every query with Prometheus metrics.
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/drufus/serenity/pkg/metrics"
)

// DBExecutor is the query surface repositories depend on. Satisfied by
// *sql.DB, *sql.Tx, *DB and *Tx.
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor is a DBExecutor bound to a transaction
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey int

const txKey ctxKey = iota

// WithTx returns a context carrying an active transaction executor
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor returns the transaction executor from the context if one is
// active, the fallback otherwise. Repositories call this on every query so
// the same code path works inside and outside a transaction.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether the context carries an active transaction
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}

// DB wraps *sql.DB so every query is observed by the metrics collector
type DB struct {
	db *sql.DB
	m  *metrics.Metrics
}

// Wrap creates an instrumented DB
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, m: m}
}

// WrapWithDefault creates an instrumented DB and starts periodic connection
// pool stats collection until stop is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stop <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				stats := db.Stats()
				m.SetPoolStats(dbName, stats.OpenConnections, stats.Idle, stats.InUse)
			}
		}
	}()
	return wrapped
}

func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

func (d *DB) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	d.m.ObserveDBQuery(op, status, time.Since(start).Seconds())
}

// QueryRowContext runs an instrumented single-row query
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(operationOf(query), start, nil)
	return row
}

// QueryContext runs an instrumented multi-row query
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(operationOf(query), start, err)
	return rows, err
}

// ExecContext runs an instrumented statement
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(operationOf(query), start, err)
	return res, err
}

// BeginTx starts a transaction whose queries are also instrumented
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, m: d.m}, nil
}

// Tx is an instrumented transaction executor
type Tx struct {
	tx *sql.Tx
	m  *metrics.Metrics
}

func (t *Tx) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	t.m.ObserveDBQuery(op, status, time.Since(start).Seconds())
}

// QueryRowContext runs an instrumented single-row query in the transaction
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.observe(operationOf(query), start, nil)
	return row
}

// QueryContext runs an instrumented multi-row query in the transaction
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.observe(operationOf(query), start, err)
	return rows, err
}

// ExecContext runs an instrumented statement in the transaction
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.observe(operationOf(query), start, err)
	return res, err
}

// Commit commits the transaction
func (t *Tx) Commit() error { return t.tx.Commit() }

// Rollback aborts the transaction
func (t *Tx) Rollback() error { return t.tx.Rollback() }
