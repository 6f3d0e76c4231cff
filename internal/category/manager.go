// Package category manages the small list of tagging objects records
// reference. All mutations persist the full list atomically
// (replace-the-list semantics, never per-item).
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jailbreak-0/iou-tracker/internal/models"
	"github.com/jailbreak-0/iou-tracker/internal/storage"
)

var (
	// ErrNotFound means no category with the given id exists.
	ErrNotFound = errors.New("category not found")
	// ErrDuplicateName means another category already carries the name,
	// compared case-insensitively.
	ErrDuplicateName = errors.New("category name already exists")
	// ErrProtectedDefault means the default category cannot be deleted.
	ErrProtectedDefault = errors.New("default category cannot be deleted")
	// ErrInvalidName means the submitted name is empty.
	ErrInvalidName = errors.New("category name required")
)

// DefaultCategoryID is the stable id of the seeded default category.
// Records with no category fall back to it.
const DefaultCategoryID = "general"

// defaults is the fixed set seeded on first run.
func defaults() []models.Category {
	return []models.Category{
		{ID: DefaultCategoryID, Name: "General", Color: "#607D8B", Icon: "tag", IsDefault: true},
		{ID: "friends", Name: "Friends", Color: "#4CAF50", Icon: "people"},
		{ID: "family", Name: "Family", Color: "#FF9800", Icon: "home"},
		{ID: "work", Name: "Work", Color: "#2196F3", Icon: "briefcase"},
	}
}

// Update holds the partial fields of a category update. Nil means unchanged.
type Update struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

// Manager implements category CRUD over the store.
type Manager struct {
	store storage.Store
}

// NewManager creates a Manager backed by store.
func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// List returns all categories, seeding the defaults on first run.
func (m *Manager) List(ctx context.Context) ([]models.Category, error) {
	categories, err := m.store.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		categories = defaults()
		if err := m.store.SaveCategories(ctx, categories); err != nil {
			return nil, fmt.Errorf("failed to seed default categories: %w", err)
		}
	}
	return categories, nil
}

// Get returns one category by id.
func (m *Manager) Get(ctx context.Context, id string) (*models.Category, error) {
	categories, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create adds a category, failing with ErrDuplicateName when a
// case-insensitive name match exists.
func (m *Manager) Create(ctx context.Context, name, color, icon string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	categories, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	if nameTaken(categories, name, "") {
		return nil, ErrDuplicateName
	}

	cat := models.Category{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
		Icon:  icon,
	}
	categories = append(categories, cat)
	if err := m.store.SaveCategories(ctx, categories); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory applies a partial update, failing with ErrNotFound for an
// unknown id and ErrDuplicateName on a rename collision.
func (m *Manager) UpdateCategory(ctx context.Context, id string, upd Update) (*models.Category, error) {
	categories, err := m.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range categories {
		if categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		if nameTaken(categories, name, id) {
			return nil, ErrDuplicateName
		}
		categories[idx].Name = name
	}
	if upd.Color != nil {
		categories[idx].Color = *upd.Color
	}
	if upd.Icon != nil {
		categories[idx].Icon = *upd.Icon
	}

	if err := m.store.SaveCategories(ctx, categories); err != nil {
		return nil, err
	}
	return &categories[idx], nil
}

// Delete removes a category, failing with ErrNotFound for an unknown id and
// ErrProtectedDefault for the default category.
func (m *Manager) Delete(ctx context.Context, id string) error {
	categories, err := m.List(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range categories {
		if categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if categories[idx].IsDefault {
		return ErrProtectedDefault
	}

	categories = append(categories[:idx], categories[idx+1:]...)
	return m.store.SaveCategories(ctx, categories)
}

// nameTaken reports whether name collides case-insensitively with any
// category other than excludeID.
func nameTaken(categories []models.Category, name, excludeID string) bool {
	for _, c := range categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
