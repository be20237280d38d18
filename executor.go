package sqlq

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// Executor performs SQL queries.
// It's an interface accepted by Query, QueryRow and Exec methods.
// Both sql.DB, sql.Conn and sql.Tx can be passed as executor.
type Executor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// ContextExecutor performs SQL queries with context.
// It's an interface accepted by Query, QueryRow and Exec methods.
// Both sql.DB, sql.Conn and sql.Tx can be passed as context executor.
type ContextExecutor interface {
	Executor

	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Query builds and executes the statement.
// For every row of a returned dataset it calls a handler function.
// If scan targets were set via To method calls, Query method automatically
// executes rows.Scan right before calling a handler function.
func (q *Stmt) Query(ctx context.Context, db Executor, handler func(rows *sql.Rows)) error {
	query, args, err := q.Build()
	if err != nil {
		return err
	}

	var rows *sql.Rows
	// Fetch rows
	if ctxExecutor, ok := db.(ContextExecutor); ok && ctx != nil {
		rows, err = ctxExecutor.QueryContext(ctx, query, args...)
	} else {
		rows, err = db.Query(query, args...)
	}
	if err != nil {
		return errors.Wrap(err, "sqlq: query failed")
	}

	// Iterate through rows of returned dataset
	for rows.Next() {
		if len(q.dest) > 0 {
			err = rows.Scan(q.dest...)
			if err != nil {
				break
			}
		}
		handler(rows)
	}
	// Check for errors during rows "Close".
	// This may be more important if multiple statements are executed
	// in a single batch and rows were written as well as read.
	if closeErr := rows.Close(); closeErr != nil {
		return errors.Wrap(closeErr, "sqlq: failed to close rows")
	}

	if err != nil {
		return errors.Wrap(err, "sqlq: failed to scan row")
	}

	return errors.Wrap(rows.Err(), "sqlq: failed to iterate rows")
}

// QueryAndClose executes the statement and releases the builder
// to a pool. Do not call any Stmt methods after this call.
func (q *Stmt) QueryAndClose(ctx context.Context, db Executor, handler func(rows *sql.Rows)) error {
	err := q.Query(ctx, db, handler)
	q.Close()
	return err
}

// QueryRow builds and executes the statement via Executor methods
// and scans values to variables bound via To method calls.
func (q *Stmt) QueryRow(ctx context.Context, db Executor) error {
	query, args, err := q.Build()
	if err != nil {
		return err
	}

	var row *sql.Row
	if ctxExecutor, ok := db.(ContextExecutor); ok && ctx != nil {
		row = ctxExecutor.QueryRowContext(ctx, query, args...)
	} else {
		row = db.QueryRow(query, args...)
	}

	// sql.ErrNoRows is passed through as is to keep == comparisons working.
	err = row.Scan(q.dest...)
	if err != nil && err != sql.ErrNoRows {
		return errors.Wrap(err, "sqlq: query row failed")
	}
	return err
}

// QueryRowAndClose executes the statement via Executor methods
// and scans values to variables bound via To method calls.
// The builder is released to a pool afterwards.
//
// Do not call any Stmt methods after this call.
func (q *Stmt) QueryRowAndClose(ctx context.Context, db Executor) error {
	err := q.QueryRow(ctx, db)
	q.Close()
	return err
}

// Exec builds and executes the statement.
func (q *Stmt) Exec(ctx context.Context, db Executor) (sql.Result, error) {
	query, args, err := q.Build()
	if err != nil {
		return nil, err
	}

	var res sql.Result
	if ctxExecutor, ok := db.(ContextExecutor); ok && ctx != nil {
		res, err = ctxExecutor.ExecContext(ctx, query, args...)
	} else {
		res, err = db.Exec(query, args...)
	}
	if err != nil {
		return nil, errors.Wrap(err, "sqlq: exec failed")
	}
	return res, nil
}

// ExecAndClose executes the statement and releases the builder
// back to a pool.
//
// Do not call any Stmt methods after this call.
func (q *Stmt) ExecAndClose(ctx context.Context, db Executor) (sql.Result, error) {
	res, err := q.Exec(ctx, db)
	q.Close()
	return res, err
}
