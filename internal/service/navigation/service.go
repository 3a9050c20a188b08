package navigation

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"contentnav/internal/config"
	"contentnav/internal/domain"
	models "contentnav/internal/domain/models/content"
	contentRepo "contentnav/internal/domain/repositories/content"
	navSvc "contentnav/internal/domain/services/navigation"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// disabledNavigation is the stored form of `navigation: false` on a page
const disabledNavigation = `"false"`

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// navigationService implements the NavigationService interface
type navigationService struct {
	repo   contentRepo.ContentRepository
	logger *slog.Logger
}

// NewNavigationService creates a new navigation service
func NewNavigationService(repo contentRepo.ContentRepository, logger *slog.Logger) navSvc.NavigationService {
	return &navigationService{
		repo:   repo,
		logger: logger,
	}
}

// GetNavigation fetches the collection's navigable records and builds the tree
func (s *navigationService) GetNavigation(ctx context.Context, req *navSvc.NavigationRequest) ([]*models.NavigationItem, error) {
	if err := validateNavigationRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	records, err := s.fetchRecords(ctx, req.Collection, req.Fields)
	if err != nil {
		return nil, err
	}

	tree := GenerateNavigationTree(records, req.Fields)

	s.logger.Debug("navigation tree built",
		"collection", req.Collection,
		"record_count", len(records),
		"root_count", len(tree),
	)

	return tree, nil
}

// GetSurround builds the tree, flattens it and cuts the window around req.Path
func (s *navigationService) GetSurround(ctx context.Context, req *navSvc.SurroundRequest) ([]*models.NavigationItem, error) {
	if err := validateSurroundRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	records, err := s.fetchRecords(ctx, req.Collection, req.Fields)
	if err != nil {
		return nil, err
	}

	flat := Flatten(GenerateNavigationTree(records, req.Fields))
	window := Surround(flat, req.Path, req.Before, req.After)

	s.logger.Debug("surround generated",
		"collection", req.Collection,
		"path", req.Path,
		"before", req.Before,
		"after", req.After,
		"flat_count", len(flat),
	)

	return window, nil
}

// fetchRecords runs the navigation query: ordered by stem, pages with
// navigation disabled filtered out, projected to the fields the tree needs.
func (s *navigationService) fetchRecords(ctx context.Context, collection string, extraFields []string) ([]models.Record, error) {
	query, err := s.repo.Query(collection)
	if err != nil {
		return nil, err
	}

	fields := append([]string{"navigation", "stem", "path", "title"}, extraFields...)
	records, err := query.
		Order("stem", contentRepo.Ascending).
		Where("navigation", contentRepo.OpNotEqual, disabledNavigation).
		Select(fields...).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query navigation records: %w", err)
	}
	return records, nil
}

func validateNavigationRequest(req *navSvc.NavigationRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Collection, validation.Required),
		validation.Field(&req.Fields,
			validation.Length(0, config.MaxExtraFields),
			validation.Each(validation.Length(1, config.MaxFieldNameLength), validation.Match(fieldNamePattern)),
		),
	)
}

func validateSurroundRequest(req *navSvc.SurroundRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Collection, validation.Required),
		validation.Field(&req.Path, validation.Required, validation.Length(1, config.MaxPathLength)),
		validation.Field(&req.Before, validation.Min(0), validation.Max(config.MaxSurroundWindow)),
		validation.Field(&req.After, validation.Min(0), validation.Max(config.MaxSurroundWindow)),
		validation.Field(&req.Fields,
			validation.Length(0, config.MaxExtraFields),
			validation.Each(validation.Length(1, config.MaxFieldNameLength), validation.Match(fieldNamePattern)),
		),
	)
}
