package repositories

import (
	"context"
	"strconv"
)

// Row is one result row keyed by column name
type Row = map[string]any

// Dialect identifies the SQL flavor an adapter speaks
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Placeholder returns the bind parameter marker for the n-th (1-based) argument
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager runs functions inside a database transaction
type TransactionManager interface {
	// ExecTx executes fn within a transaction, joining one already carried by ctx
	ExecTx(ctx context.Context, fn TxFn) error
}

// DatabaseAdapter is the minimal surface the content layer needs from a database.
// Both the embedded (SQLite) and remote (Postgres) backends implement it.
type DatabaseAdapter interface {
	// All runs a query and returns every row
	All(ctx context.Context, sql string, args ...any) ([]Row, error)

	// First runs a query and returns the first row, or nil when there is none
	First(ctx context.Context, sql string, args ...any) (Row, error)

	// Exec runs a statement that returns no rows
	Exec(ctx context.Context, sql string, args ...any) error

	// ExecTx runs fn inside a transaction; adapter calls made with the
	// context passed to fn participate in it
	ExecTx(ctx context.Context, fn TxFn) error

	// Dialect reports the SQL flavor for placeholder rendering
	Dialect() Dialect

	// Close releases the underlying connections
	Close() error
}
