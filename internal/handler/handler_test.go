package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"contentnav/internal/domain"
	models "contentnav/internal/domain/models/content"
	contentRepo "contentnav/internal/domain/repositories/content"
	importSvc "contentnav/internal/domain/services/importer"
	navSvc "contentnav/internal/domain/services/navigation"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeNavService struct {
	navReq      *navSvc.NavigationRequest
	surroundReq *navSvc.SurroundRequest
	tree        []*models.NavigationItem
	window      []*models.NavigationItem
	err         error
}

func (f *fakeNavService) GetNavigation(_ context.Context, req *navSvc.NavigationRequest) ([]*models.NavigationItem, error) {
	f.navReq = req
	return f.tree, f.err
}

func (f *fakeNavService) GetSurround(_ context.Context, req *navSvc.SurroundRequest) ([]*models.NavigationItem, error) {
	f.surroundReq = req
	return f.window, f.err
}

type fakeImporter struct {
	collection string
	payload    []byte
	result     *importSvc.ImportResult
	err        error
}

func (f *fakeImporter) ImportDir(context.Context, string, string) (*importSvc.ImportResult, error) {
	return nil, domain.ErrUnsupported
}

func (f *fakeImporter) ImportZip(_ context.Context, collection string, archive io.Reader) (*importSvc.ImportResult, error) {
	f.collection = collection
	f.payload, _ = io.ReadAll(archive)
	return f.result, f.err
}

type fakeRepo struct {
	collections []models.Collection
}

func (f *fakeRepo) Collections() []models.Collection { return f.collections }

func (f *fakeRepo) Collection(name string) (*models.Collection, error) {
	return nil, &domain.NotFoundError{Message: "collection " + name + " not found"}
}

func (f *fakeRepo) Query(string) (contentRepo.QueryBuilder, error) { return nil, domain.ErrUnsupported }

func newMux(nav navSvc.NavigationService, imp importSvc.ImportService, repo contentRepo.ContentRepository) *http.ServeMux {
	navHandler := NewNavigationHandler(nav, testLogger())
	importHandler := NewImportHandler(imp, testLogger())
	collectionHandler := NewCollectionHandler(repo, testLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", collectionHandler.HealthCheck)
	mux.HandleFunc("GET /api/collections", collectionHandler.ListCollections)
	mux.HandleFunc("GET /api/collections/{name}/navigation", navHandler.GetNavigation)
	mux.HandleFunc("GET /api/collections/{name}/surround", navHandler.GetSurround)
	mux.HandleFunc("POST /api/collections/{name}/import", importHandler.Import)
	return mux
}

func serve(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestGetNavigation(t *testing.T) {
	nav := &fakeNavService{tree: []*models.NavigationItem{
		{Title: "Guide", Path: "/guide", Stem: "1.guide/index", Fields: map[string]any{"icon": "i-book"}},
	}}
	mux := newMux(nav, &fakeImporter{}, &fakeRepo{})

	rec := serve(mux, httptest.NewRequest(http.MethodGet, "/api/collections/docs/navigation?fields=icon,%20badge,", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "docs", nav.navReq.Collection)
	assert.Equal(t, []string{"icon", "badge"}, nav.navReq.Fields)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Guide", body[0]["title"])
	assert.Equal(t, "i-book", body[0]["icon"])
}

func TestGetNavigation_EmptyTree(t *testing.T) {
	mux := newMux(&fakeNavService{}, &fakeImporter{}, &fakeRepo{})

	rec := serve(mux, httptest.NewRequest(http.MethodGet, "/api/collections/docs/navigation", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetSurround(t *testing.T) {
	nav := &fakeNavService{window: []*models.NavigationItem{
		nil,
		{Title: "Install", Path: "/guide/install", Stem: "1.guide/2.install"},
	}}
	mux := newMux(nav, &fakeImporter{}, &fakeRepo{})

	rec := serve(mux, httptest.NewRequest(http.MethodGet, "/api/collections/docs/surround?path=/guide&after=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/guide", nav.surroundReq.Path)
	assert.Equal(t, 1, nav.surroundReq.Before, "before defaults to one")
	assert.Equal(t, 1, nav.surroundReq.After)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Nil(t, body[0])
	assert.Equal(t, "/guide/install", body[1]["path"])
}

func TestGetSurround_InvalidParams(t *testing.T) {
	mux := newMux(&fakeNavService{}, &fakeImporter{}, &fakeRepo{})

	rec := serve(mux, httptest.NewRequest(http.MethodGet, "/api/collections/docs/surround?path=/a&before=two", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "before must be an integer")
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation sentinel", fmt.Errorf("%w: path is required", domain.ErrValidation), http.StatusBadRequest},
		{"typed not found", &domain.NotFoundError{Message: "collection blog not found"}, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("query: %w", domain.ErrNotFound), http.StatusNotFound},
		{"conflict", &domain.ConflictError{Message: "duplicate"}, http.StatusConflict},
		{"unsupported", fmt.Errorf("%w: d1", domain.ErrUnsupported), http.StatusNotImplemented},
		{"unexpected", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newMux(&fakeNavService{err: tt.err}, &fakeImporter{}, &fakeRepo{})
			rec := serve(mux, httptest.NewRequest(http.MethodGet, "/api/collections/docs/navigation", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var problem map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.EqualValues(t, tt.wantStatus, problem["status"])
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "disk on fire")
			}
		})
	}
}

func TestErrorMapping_FieldErrors(t *testing.T) {
	fieldErr := validation.Errors{"path": errors.New("cannot be blank")}
	nav := &fakeNavService{err: fmt.Errorf("%w: %w", domain.ErrValidation, fieldErr)}
	mux := newMux(nav, &fakeImporter{}, &fakeRepo{})

	rec := serve(mux, httptest.NewRequest(http.MethodGet, "/api/collections/docs/surround", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, map[string]any{"path": "cannot be blank"}, problem["errors"])
}

func TestListCollectionsAndHealth(t *testing.T) {
	repo := &fakeRepo{collections: []models.Collection{
		{Name: "docs", Type: models.CollectionTypePage, Table: "dev_content_docs"},
	}}
	mux := newMux(&fakeNavService{}, &fakeImporter{}, repo)

	rec := serve(mux, httptest.NewRequest(http.MethodGet, "/api/collections", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"docs"`)
	assert.NotContains(t, rec.Body.String(), "dev_content_docs")

	rec = serve(mux, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func multipartUpload(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, "content.zip")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/collections/docs/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestImport(t *testing.T) {
	imp := &fakeImporter{result: &importSvc.ImportResult{
		Summary: importSvc.ImportSummary{Created: 1, TotalFiles: 1},
		Errors:  []importSvc.ImportError{},
		Entries: []importSvc.ImportedEntry{{ID: "id-1", Path: "/a", Stem: "a"}},
	}}
	mux := newMux(&fakeNavService{}, imp, &fakeRepo{})

	rec := serve(mux, multipartUpload(t, "file", []byte("zip-bytes")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "docs", imp.collection)
	assert.Equal(t, []byte("zip-bytes"), imp.payload)

	var resp ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Summary.Created)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "/a", resp.Entries[0].Path)
}

func TestImport_Errors(t *testing.T) {
	t.Run("missing file field", func(t *testing.T) {
		mux := newMux(&fakeNavService{}, &fakeImporter{}, &fakeRepo{})
		rec := serve(mux, multipartUpload(t, "other", []byte("x")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		mux := newMux(&fakeNavService{}, &fakeImporter{}, &fakeRepo{})
		rec := serve(mux, httptest.NewRequest(http.MethodPost, "/api/collections/docs/import", bytes.NewReader([]byte("x"))))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown collection", func(t *testing.T) {
		imp := &fakeImporter{err: &domain.NotFoundError{Message: "collection blog not found"}}
		mux := newMux(&fakeNavService{}, imp, &fakeRepo{})
		rec := serve(mux, multipartUpload(t, "file", []byte("x")))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
