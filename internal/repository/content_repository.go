package repository

import (
	"fmt"

	"contentnav/internal/domain"
	models "contentnav/internal/domain/models/content"
	contentRepo "contentnav/internal/domain/repositories/content"
)

// ContentRepository implements contentRepo.ContentRepository on a ContentDatabase
type ContentRepository struct {
	db          *ContentDatabase
	collections []models.Collection
	byName      map[string]*models.Collection
}

// NewContentRepository creates a repository over the registered collections
func NewContentRepository(db *ContentDatabase, collections []models.Collection) contentRepo.ContentRepository {
	byName := make(map[string]*models.Collection, len(collections))
	for i := range collections {
		byName[collections[i].Name] = &collections[i]
	}
	return &ContentRepository{
		db:          db,
		collections: collections,
		byName:      byName,
	}
}

// Collections lists every registered collection
func (r *ContentRepository) Collections() []models.Collection {
	return r.collections
}

// Collection returns a registered collection by name
func (r *ContentRepository) Collection(name string) (*models.Collection, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("collection %q not found", name)}
	}
	return c, nil
}

// Query starts a query over the named collection
func (r *ContentRepository) Query(name string) (contentRepo.QueryBuilder, error) {
	c, err := r.Collection(name)
	if err != nil {
		return nil, err
	}
	return newCollectionQuery(r.db, c), nil
}
