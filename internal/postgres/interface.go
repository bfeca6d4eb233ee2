package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ DB = (*pgxpool.Pool)(nil)

// Queryable executes queries and commands. Both pools and transactions satisfy it.
type Queryable interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// DB is a Queryable that can also start transactions and be health-checked.
type DB interface {
	Queryable
	Begin(context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}
