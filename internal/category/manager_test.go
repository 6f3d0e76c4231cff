package category

import (
	"context"
	"errors"
	"testing"

	"github.com/jailbreak-0/iou-tracker/internal/models"
)

// categoryStore is an in-memory storage.Store that only tracks categories.
type categoryStore struct {
	categories []models.Category
	saves      int
}

func (f *categoryStore) LoadRecords(context.Context) ([]models.DebtRecord, error)  { return nil, nil }
func (f *categoryStore) SaveRecords(context.Context, []models.DebtRecord) error    { return nil }
func (f *categoryStore) LoadSettings(context.Context) (*models.Settings, error)    { return nil, nil }
func (f *categoryStore) SaveSettings(context.Context, models.Settings) error       { return nil }
func (f *categoryStore) LoadEntitlement(context.Context) (*models.Entitlement, error) {
	return nil, nil
}
func (f *categoryStore) SaveEntitlement(context.Context, models.Entitlement) error { return nil }
func (f *categoryStore) LoadAdCounters(context.Context) (*models.AdCounters, error) {
	return nil, nil
}
func (f *categoryStore) SaveAdCounters(context.Context, models.AdCounters) error { return nil }
func (f *categoryStore) Close() error                                            { return nil }

func (f *categoryStore) LoadCategories(context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *categoryStore) SaveCategories(_ context.Context, c []models.Category) error {
	f.categories = c
	f.saves++
	return nil
}

func TestManager(t *testing.T) {
	ctx := context.Background()

	t.Run("List seeds defaults on first run", func(t *testing.T) {
		store := &categoryStore{}
		m := NewManager(store)

		categories, err := m.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(categories) == 0 {
			t.Fatal("expected seeded categories")
		}
		if categories[0].ID != DefaultCategoryID || !categories[0].IsDefault {
			t.Errorf("first seeded category = %+v, want default %q", categories[0], DefaultCategoryID)
		}
		if store.saves != 1 {
			t.Errorf("saves = %d, want 1 (seed persisted)", store.saves)
		}

		// Second List must not reseed.
		if _, err := m.List(ctx); err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if store.saves != 1 {
			t.Errorf("saves after second List = %d, want 1", store.saves)
		}
	})

	t.Run("Create rejects case-insensitive duplicate names", func(t *testing.T) {
		store := &categoryStore{}
		m := NewManager(store)

		if _, err := m.Create(ctx, "Trips", "#9C27B0", "plane"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := m.Create(ctx, "tRiPs", "#000000", "car"); !errors.Is(err, ErrDuplicateName) {
			t.Errorf("err = %v, want ErrDuplicateName", err)
		}
		// Colliding with a seeded default also fails.
		if _, err := m.Create(ctx, "general", "#000000", "tag"); !errors.Is(err, ErrDuplicateName) {
			t.Errorf("err = %v, want ErrDuplicateName for seeded name", err)
		}
	})

	t.Run("Create rejects empty name", func(t *testing.T) {
		m := NewManager(&categoryStore{})
		if _, err := m.Create(ctx, "   ", "#fff", "tag"); !errors.Is(err, ErrInvalidName) {
			t.Errorf("err = %v, want ErrInvalidName", err)
		}
	})

	t.Run("UpdateCategory applies partial fields", func(t *testing.T) {
		store := &categoryStore{}
		m := NewManager(store)

		created, err := m.Create(ctx, "Trips", "#9C27B0", "plane")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		newColor := "#E91E63"
		updated, err := m.UpdateCategory(ctx, created.ID, Update{Color: &newColor})
		if err != nil {
			t.Fatalf("UpdateCategory failed: %v", err)
		}
		if updated.Color != newColor {
			t.Errorf("Color = %s, want %s", updated.Color, newColor)
		}
		if updated.Name != "Trips" {
			t.Errorf("Name changed unexpectedly: %s", updated.Name)
		}
	})

	t.Run("UpdateCategory rejects rename collision and unknown id", func(t *testing.T) {
		store := &categoryStore{}
		m := NewManager(store)

		created, err := m.Create(ctx, "Trips", "#9C27B0", "plane")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		clash := "FRIENDS" // collides with a seeded default
		if _, err := m.UpdateCategory(ctx, created.ID, Update{Name: &clash}); !errors.Is(err, ErrDuplicateName) {
			t.Errorf("err = %v, want ErrDuplicateName", err)
		}

		// Renaming to its own name (case change) is allowed.
		self := "TRIPS"
		if _, err := m.UpdateCategory(ctx, created.ID, Update{Name: &self}); err != nil {
			t.Errorf("self-rename failed: %v", err)
		}

		name := "Whatever"
		if _, err := m.UpdateCategory(ctx, "missing-id", Update{Name: &name}); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("Delete protects the default and checks existence", func(t *testing.T) {
		store := &categoryStore{}
		m := NewManager(store)

		if err := m.Delete(ctx, DefaultCategoryID); !errors.Is(err, ErrProtectedDefault) {
			t.Errorf("err = %v, want ErrProtectedDefault", err)
		}
		if err := m.Delete(ctx, "missing-id"); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}

		created, err := m.Create(ctx, "Trips", "#9C27B0", "plane")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := m.Delete(ctx, created.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := m.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("deleted category still retrievable: %v", err)
		}
	})
}
