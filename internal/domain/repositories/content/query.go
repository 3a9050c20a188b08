package content

import (
	"context"

	models "contentnav/internal/domain/models/content"
)

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Operator is a comparison operator usable in Where
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "<>"
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpLike         Operator = "LIKE"
	OpIn           Operator = "IN"
	OpIsNull       Operator = "IS NULL"
	OpIsNotNull    Operator = "IS NOT NULL"
)

// QueryBuilder builds a query over one collection.
// Builder methods return a new builder and never modify the receiver.
type QueryBuilder interface {
	// Order appends a sort key
	Order(field string, direction Direction) QueryBuilder

	// Where appends a condition; conditions are joined with AND
	Where(field string, op Operator, value any) QueryBuilder

	// Select restricts the returned fields
	Select(fields ...string) QueryBuilder

	// Limit caps the number of rows (0 = no limit)
	Limit(n int) QueryBuilder

	// Skip offsets the result
	Skip(n int) QueryBuilder

	// All runs the query and returns matching records in order
	All(ctx context.Context) ([]models.Record, error)

	// First returns the first matching record, or ErrNotFound
	First(ctx context.Context) (*models.Record, error)

	// Count returns the number of matching records
	Count(ctx context.Context) (int, error)
}
