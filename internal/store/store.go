// Package store implements the account, catalog and subscription storage
// interfaces on Postgres through pgx.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the store uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store is the Postgres storage for users, tools and subscriptions.
type Store struct {
	db DB
}

// New creates a Store on top of a pool or any compatible connection.
func New(db DB) *Store {
	if db == nil {
		panic("store: DB is required")
	}
	return &Store{db: db}
}
