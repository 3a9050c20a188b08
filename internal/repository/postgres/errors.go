package postgres

import (
	"errors"
	"fmt"

	"contentnav/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsPgDuplicateError checks if error is a unique constraint violation
func IsPgDuplicateError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	return false
}

// IsPgUndefinedTableError checks if error is a missing relation
func IsPgUndefinedTableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 42P01 = undefined_table
		return pgErr.Code == "42P01"
	}
	return false
}

// translateError maps Postgres failures onto domain errors
func translateError(op string, err error) error {
	switch {
	case IsPgDuplicateError(err):
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	case IsPgUndefinedTableError(err):
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
