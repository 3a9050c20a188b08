package handler

import (
	"log/slog"
	"net/http"

	models "contentnav/internal/domain/models/content"
	navSvc "contentnav/internal/domain/services/navigation"
	"contentnav/internal/httputil"
)

// NavigationHandler handles HTTP requests for navigation trees and surround windows
type NavigationHandler struct {
	navService navSvc.NavigationService
	logger     *slog.Logger
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navService navSvc.NavigationService, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{
		navService: navService,
		logger:     logger,
	}
}

// GetNavigation returns the navigation tree of a collection
// GET /api/collections/{name}/navigation?fields=icon,badge
func (h *NavigationHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	tree, err := h.navService.GetNavigation(r.Context(), &navSvc.NavigationRequest{
		Collection: r.PathValue("name"),
		Fields:     parseFields(r),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	if tree == nil {
		tree = []*models.NavigationItem{}
	}
	httputil.RespondJSON(w, http.StatusOK, tree)
}

// GetSurround returns the pages around a path. Missing neighbors are null.
// GET /api/collections/{name}/surround?path=/guide/install&before=1&after=1&fields=icon
func (h *NavigationHandler) GetSurround(w http.ResponseWriter, r *http.Request) {
	defaults := models.DefaultSurroundOptions()

	before, err := parseIntParam(r, "before", defaults.Before)
	if err != nil {
		handleError(w, err)
		return
	}
	after, err := parseIntParam(r, "after", defaults.After)
	if err != nil {
		handleError(w, err)
		return
	}

	window, err := h.navService.GetSurround(r.Context(), &navSvc.SurroundRequest{
		Collection: r.PathValue("name"),
		Path:       r.URL.Query().Get("path"),
		Before:     before,
		After:      after,
		Fields:     parseFields(r),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, window)
}
