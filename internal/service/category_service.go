package service

import (
	"context"
	"errors"

	"github.com/jailbreak-0/iou-tracker/internal/category"
	"github.com/jailbreak-0/iou-tracker/internal/models"
)

// ErrFeatureDisabled means the requested capability is not in the enabled
// feature set.
var ErrFeatureDisabled = errors.New("feature disabled")

// CategoryService gates category mutations behind the custom_categories
// feature flag. Reads are always allowed; the seeded defaults exist in
// every build.
type CategoryService struct {
	manager *category.Manager
	enabled bool
}

// NewCategoryService creates a CategoryService. enabled is the
// custom_categories feature flag.
func NewCategoryService(manager *category.Manager, enabled bool) *CategoryService {
	return &CategoryService{manager: manager, enabled: enabled}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.manager.List(ctx)
}

// Create adds a category when the feature is enabled.
func (s *CategoryService) Create(ctx context.Context, name, color, icon string) (*models.Category, error) {
	if !s.enabled {
		return nil, ErrFeatureDisabled
	}
	return s.manager.Create(ctx, name, color, icon)
}

// Update applies a partial category update when the feature is enabled.
func (s *CategoryService) Update(ctx context.Context, id string, upd category.Update) (*models.Category, error) {
	if !s.enabled {
		return nil, ErrFeatureDisabled
	}
	return s.manager.UpdateCategory(ctx, id, upd)
}

// Delete removes a category when the feature is enabled.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if !s.enabled {
		return ErrFeatureDisabled
	}
	return s.manager.Delete(ctx, id)
}
