package postgres

import (
	"context"
	"log/slog"

	"contentnav/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Adapter implements repositories.DatabaseAdapter on a pgx connection pool.
// Calls made with a context from ExecTx run on that transaction.
type Adapter struct {
	pool   *pgxpool.Pool
	txm    repositories.TransactionManager
	logger *slog.Logger
}

// NewAdapter creates a new Postgres adapter
func NewAdapter(config *RepositoryConfig) *Adapter {
	return &Adapter{
		pool:   config.Pool,
		txm:    NewTransactionManager(config.Pool, config.Logger),
		logger: config.Logger,
	}
}

// All runs a query and returns every row keyed by column name
func (a *Adapter) All(ctx context.Context, sql string, args ...any) ([]repositories.Row, error) {
	db := getExecutor(ctx, a.pool)

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError("query", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var result []repositories.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, translateError("scan row", err)
		}
		row := make(repositories.Row, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("iterate rows", err)
	}
	return result, nil
}

// First runs a query and returns its first row, or nil when there is none
func (a *Adapter) First(ctx context.Context, sql string, args ...any) (repositories.Row, error) {
	rows, err := a.All(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Exec runs a statement that returns no rows
func (a *Adapter) Exec(ctx context.Context, sql string, args ...any) error {
	db := getExecutor(ctx, a.pool)
	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return translateError("exec", err)
	}
	return nil
}

// ExecTx runs fn inside a transaction
func (a *Adapter) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return a.txm.ExecTx(ctx, fn)
}

// Dialect reports Postgres placeholder style
func (a *Adapter) Dialect() repositories.Dialect {
	return repositories.DialectPostgres
}

// Close closes the pool
func (a *Adapter) Close() error {
	a.pool.Close()
	return nil
}
