// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/jailbreak-0/iou-tracker/internal/models"
	"github.com/jailbreak-0/iou-tracker/internal/storage"
)

// Document keys. One key per persisted state blob.
const (
	keyRecords     = "records"
	keySettings    = "settings"
	keyCategories  = "categories"
	keyEntitlement = "purchase"
	keyAdCounters  = "ad_counters"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using a single SQLite document table.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// get loads and decodes the document under key into v.
// Returns false with a nil error when the document has never been saved.
func (s *SQLiteStore) get(ctx context.Context, key string, v any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM documents WHERE key = ?", key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: failed to read %s: %v", storage.ErrStorage, key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("%w: failed to decode %s: %v", storage.ErrStorage, key, err)
	}
	return true, nil
}

// put encodes v and replaces the document under key.
func (s *SQLiteStore) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %v", storage.ErrStorage, key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", storage.ErrStorage, key, err)
	}
	return nil
}

// LoadRecords returns the full debt record list.
func (s *SQLiteStore) LoadRecords(ctx context.Context) ([]models.DebtRecord, error) {
	var records []models.DebtRecord
	if _, err := s.get(ctx, keyRecords, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveRecords replaces the full debt record list.
func (s *SQLiteStore) SaveRecords(ctx context.Context, records []models.DebtRecord) error {
	if records == nil {
		records = []models.DebtRecord{}
	}
	return s.put(ctx, keyRecords, records)
}

// LoadSettings returns the settings object, or nil if never saved.
func (s *SQLiteStore) LoadSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	ok, err := s.get(ctx, keySettings, &settings)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &settings, nil
}

// SaveSettings replaces the settings object.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings models.Settings) error {
	return s.put(ctx, keySettings, settings)
}

// LoadCategories returns the full category list.
func (s *SQLiteStore) LoadCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if _, err := s.get(ctx, keyCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// SaveCategories replaces the full category list.
func (s *SQLiteStore) SaveCategories(ctx context.Context, categories []models.Category) error {
	if categories == nil {
		categories = []models.Category{}
	}
	return s.put(ctx, keyCategories, categories)
}

// LoadEntitlement returns the ad-free unlock state, or nil if never saved.
func (s *SQLiteStore) LoadEntitlement(ctx context.Context) (*models.Entitlement, error) {
	var ent models.Entitlement
	ok, err := s.get(ctx, keyEntitlement, &ent)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &ent, nil
}

// SaveEntitlement replaces the ad-free unlock state.
func (s *SQLiteStore) SaveEntitlement(ctx context.Context, ent models.Entitlement) error {
	return s.put(ctx, keyEntitlement, ent)
}

// LoadAdCounters returns the interstitial counters, or nil if never saved.
func (s *SQLiteStore) LoadAdCounters(ctx context.Context) (*models.AdCounters, error) {
	var counters models.AdCounters
	ok, err := s.get(ctx, keyAdCounters, &counters)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &counters, nil
}

// SaveAdCounters replaces the interstitial counters.
func (s *SQLiteStore) SaveAdCounters(ctx context.Context, counters models.AdCounters) error {
	return s.put(ctx, keyAdCounters, counters)
}
