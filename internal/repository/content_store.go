package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	models "contentnav/internal/domain/models/content"
	"contentnav/internal/domain/repositories"
	contentRepo "contentnav/internal/domain/repositories/content"
)

const tableSchema = `
CREATE TABLE IF NOT EXISTS %[1]s (
	id          TEXT PRIMARY KEY,
	path        TEXT NOT NULL,
	stem        TEXT NOT NULL UNIQUE,
	extension   TEXT NOT NULL DEFAULT '',
	title       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	navigation  TEXT NOT NULL DEFAULT 'true',
	body        TEXT NOT NULL DEFAULT '',
	meta        TEXT NOT NULL DEFAULT '{}',
	updated_at  TEXT NOT NULL DEFAULT ''
)`

const pathIndex = `CREATE INDEX IF NOT EXISTS %[1]s_path_idx ON %[1]s (path)`

// insertColumns is the column order used by upserts
var insertColumns = []string{"id", "path", "stem", "extension", "title", "description", "navigation", "body", "meta", "updated_at"}

// ContentStore implements contentRepo.ContentStore on a DatabaseAdapter
type ContentStore struct {
	db     repositories.DatabaseAdapter
	logger *slog.Logger
}

// NewContentStore creates a new content store
func NewContentStore(db repositories.DatabaseAdapter, logger *slog.Logger) contentRepo.ContentStore {
	return &ContentStore{db: db, logger: logger}
}

// EnsureSchema creates the collection table and its path index
func (s *ContentStore) EnsureSchema(ctx context.Context, collection *models.Collection) error {
	if err := s.db.Exec(ctx, fmt.Sprintf(tableSchema, collection.Table)); err != nil {
		return fmt.Errorf("create table %s: %w", collection.Table, err)
	}
	if err := s.db.Exec(ctx, fmt.Sprintf(pathIndex, collection.Table)); err != nil {
		return fmt.Errorf("create path index on %s: %w", collection.Table, err)
	}
	return nil
}

// Replace swaps every entry of the collection for entries in one transaction
func (s *ContentStore) Replace(ctx context.Context, collection *models.Collection, entries []models.Entry) error {
	return s.db.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.Clear(txCtx, collection); err != nil {
			return err
		}
		return s.Upsert(txCtx, collection, entries)
	})
}

// Upsert inserts entries, updating rows whose stem already exists
func (s *ContentStore) Upsert(ctx context.Context, collection *models.Collection, entries []models.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	query := s.upsertSQL(collection)

	return s.db.ExecTx(ctx, func(txCtx context.Context) error {
		for i := range entries {
			args, err := entryArgs(&entries[i])
			if err != nil {
				return err
			}
			if err := s.db.Exec(txCtx, query, args...); err != nil {
				return fmt.Errorf("upsert %s: %w", entries[i].Stem, err)
			}
		}
		s.logger.Debug("entries upserted", "collection", collection.Name, "count", len(entries))
		return nil
	})
}

// Clear deletes every entry of the collection
func (s *ContentStore) Clear(ctx context.Context, collection *models.Collection) error {
	if err := s.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s", collection.Table)); err != nil {
		return fmt.Errorf("clear %s: %w", collection.Table, err)
	}
	return nil
}

// Drop removes the collection table
func (s *ContentStore) Drop(ctx context.Context, collection *models.Collection) error {
	if err := s.db.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", collection.Table)); err != nil {
		return fmt.Errorf("drop %s: %w", collection.Table, err)
	}
	return nil
}

func (s *ContentStore) upsertSQL(collection *models.Collection) string {
	dialect := s.db.Dialect()
	marks := make([]string, len(insertColumns))
	var updates []string
	for i, col := range insertColumns {
		marks[i] = dialect.Placeholder(i + 1)
		if col != "id" && col != "stem" {
			updates = append(updates, fmt.Sprintf("%s = excluded.%s", col, col))
		}
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (stem) DO UPDATE SET %s",
		collection.Table,
		strings.Join(insertColumns, ", "),
		strings.Join(marks, ", "),
		strings.Join(updates, ", "),
	)
}

// entryArgs returns the bind arguments of an entry in insertColumns order
func entryArgs(e *models.Entry) ([]any, error) {
	navigation, err := encodeNavigation(e)
	if err != nil {
		return nil, err
	}
	meta := "{}"
	if len(e.Meta) > 0 {
		b, err := json.Marshal(e.Meta)
		if err != nil {
			return nil, fmt.Errorf("encode meta of %s: %w", e.Stem, err)
		}
		meta = string(b)
	}
	updatedAt := e.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return []any{
		e.ID, e.Path, e.Stem, e.Extension, e.Title, e.Description,
		navigation, e.Body, meta, updatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// encodeNavigation serializes the navigation value as JSON text. A page hidden
// from navigation is stored as the string "false" so the navigation query can
// exclude it; directory configs keep a plain false so their subtree is pruned.
func encodeNavigation(e *models.Entry) (string, error) {
	if e.Navigation == nil {
		return "true", nil
	}
	if !e.IsDirectoryConfig() && models.ParseNavigationField(e.Navigation).IsDisabled() {
		return `"false"`, nil
	}
	b, err := json.Marshal(e.Navigation)
	if err != nil {
		return "", fmt.Errorf("encode navigation of %s: %w", e.Stem, err)
	}
	return string(b), nil
}
