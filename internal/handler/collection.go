package handler

import (
	"log/slog"
	"net/http"

	models "contentnav/internal/domain/models/content"
	contentRepo "contentnav/internal/domain/repositories/content"
	"contentnav/internal/httputil"
)

// CollectionHandler lists registered collections
type CollectionHandler struct {
	repo   contentRepo.ContentRepository
	logger *slog.Logger
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(repo contentRepo.ContentRepository, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListCollections returns every registered collection
// GET /api/collections
func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections := h.repo.Collections()
	if collections == nil {
		collections = []models.Collection{}
	}
	httputil.RespondJSON(w, http.StatusOK, collections)
}

// HealthCheck returns server health status
// GET /health
func (h *CollectionHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
