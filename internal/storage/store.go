// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/jailbreak-0/iou-tracker/internal/models"
)

// ErrStorage wraps any read/write failure against the local store. Callers
// surface it as a generic alert and abort the operation; because every write
// replaces a whole document there is never a partial mutation to undo.
var ErrStorage = errors.New("storage failure")

// Store is the local key-value document store. Each Load/Save pair works on
// one opaque JSON document; mutations are read-modify-write over the whole
// document with last-write-wins semantics and no locking.
//
// Load methods return the zero value (nil) with a nil error when the
// document has never been saved; callers apply their own defaults.
type Store interface {
	// LoadRecords returns the full debt record list.
	LoadRecords(ctx context.Context) ([]models.DebtRecord, error)

	// SaveRecords replaces the full debt record list.
	SaveRecords(ctx context.Context, records []models.DebtRecord) error

	// LoadSettings returns the settings object, or nil if never saved.
	LoadSettings(ctx context.Context) (*models.Settings, error)

	// SaveSettings replaces the settings object.
	SaveSettings(ctx context.Context, settings models.Settings) error

	// LoadCategories returns the full category list.
	LoadCategories(ctx context.Context) ([]models.Category, error)

	// SaveCategories replaces the full category list.
	SaveCategories(ctx context.Context, categories []models.Category) error

	// LoadEntitlement returns the ad-free unlock state, or nil if never saved.
	LoadEntitlement(ctx context.Context) (*models.Entitlement, error)

	// SaveEntitlement replaces the ad-free unlock state.
	SaveEntitlement(ctx context.Context, ent models.Entitlement) error

	// LoadAdCounters returns the interstitial counters, or nil if never saved.
	LoadAdCounters(ctx context.Context) (*models.AdCounters, error)

	// SaveAdCounters replaces the interstitial counters.
	SaveAdCounters(ctx context.Context, counters models.AdCounters) error

	// Close releases any resources held by the store.
	Close() error
}
