package navigation

import (
	"context"

	models "contentnav/internal/domain/models/content"
)

// NavigationService builds navigation trees and surround windows for page collections
type NavigationService interface {
	// GetNavigation returns the sorted navigation forest of a collection
	GetNavigation(ctx context.Context, req *NavigationRequest) ([]*models.NavigationItem, error)

	// GetSurround returns the prev/next window around a page.
	// Entries are nil where no neighbor exists.
	GetSurround(ctx context.Context, req *SurroundRequest) ([]*models.NavigationItem, error)
}

// NavigationRequest selects a collection and the extra fields to project
type NavigationRequest struct {
	Collection string   `json:"collection"`
	Fields     []string `json:"fields,omitempty"`
}

// SurroundRequest selects the page and window size for GetSurround
type SurroundRequest struct {
	Collection string   `json:"collection"`
	Path       string   `json:"path"`
	Before     int      `json:"before"`
	After      int      `json:"after"`
	Fields     []string `json:"fields,omitempty"`
}
