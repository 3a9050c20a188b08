package content

import (
	"context"

	models "contentnav/internal/domain/models/content"
)

// ContentRepository exposes read access to registered collections
type ContentRepository interface {
	// Collections lists every registered collection
	Collections() []models.Collection

	// Collection returns a registered collection by name
	Collection(name string) (*models.Collection, error)

	// Query starts a query over the named collection
	Query(name string) (QueryBuilder, error)
}

// ContentStore writes collection tables
type ContentStore interface {
	// EnsureSchema creates the collection table if it is missing
	EnsureSchema(ctx context.Context, collection *models.Collection) error

	// Replace swaps every entry of the collection for the given set in one transaction
	Replace(ctx context.Context, collection *models.Collection, entries []models.Entry) error

	// Upsert inserts or updates entries keyed by path
	Upsert(ctx context.Context, collection *models.Collection, entries []models.Entry) error

	// Clear deletes every entry of the collection
	Clear(ctx context.Context, collection *models.Collection) error

	// Drop removes the collection table
	Drop(ctx context.Context, collection *models.Collection) error
}
