package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	models "contentnav/internal/domain/models/content"
	"contentnav/internal/repository/sqlite"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCollections() []models.Collection {
	return []models.Collection{
		{Name: "docs", Type: models.CollectionTypePage, Fields: []string{"icon"}, Table: "test_content_docs"},
	}
}

// newTestDatabase opens an in-memory database with the docs table created
func newTestDatabase(t *testing.T) (*ContentDatabase, []models.Collection) {
	t.Helper()
	adapter, err := sqlite.Open(sqlite.MemoryPath, testLogger())
	require.NoError(t, err)

	collections := testCollections()
	db := NewContentDatabaseFromAdapter(adapter, collections, testLogger())
	t.Cleanup(func() { db.Close() })

	store := NewContentStore(db, testLogger())
	require.NoError(t, store.EnsureSchema(context.Background(), &collections[0]))
	return db, collections
}

func docsEntries() []models.Entry {
	return []models.Entry{
		{ID: "1", Path: "/guide", Stem: "1.guide/index", Extension: "md", Title: "Guide", Meta: map[string]any{"icon": "i-book"}},
		{ID: "2", Path: "/guide/install", Stem: "1.guide/2.install", Extension: "md", Title: "Install"},
		{ID: "3", Path: "/guide/secret", Stem: "1.guide/3.secret", Extension: "md", Title: "Secret", Navigation: false},
		{ID: "4", Path: "/api/.navigation", Stem: "2.api/.navigation", Extension: "yml", Title: "API Reference", Navigation: map[string]any{"icon": "i-code"}},
		{ID: "5", Path: "/api/auth", Stem: "2.api/1.auth", Extension: "md", Title: "Auth"},
		{ID: "6", Path: "/legacy/.navigation", Stem: "3.legacy/.navigation", Extension: "yml", Navigation: false},
		{ID: "7", Path: "/legacy/old", Stem: "3.legacy/1.old", Extension: "md", Title: "Old"},
	}
}
