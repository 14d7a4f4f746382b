package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the minimal synchronous query contract the loader needs from a
// relational store: parameterized queries with positional placeholders,
// returning ordered rows of typed scalars. It is a borrowed resource — the
// caller owns the connection's lifecycle and serializes concurrent use.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Both *sql.DB and *sql.Tx satisfy the contract.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Open opens a database handle for the given driver and DSN and verifies it
// with a ping. The handle is pinned to a single connection: the loader is a
// single-caller, sequential consumer and SQLite in-memory databases exist
// per connection.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}
	return db, nil
}
