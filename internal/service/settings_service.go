package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jailbreak-0/iou-tracker/internal/auth"
	"github.com/jailbreak-0/iou-tracker/internal/models"
	"github.com/jailbreak-0/iou-tracker/internal/reminder"
	"github.com/jailbreak-0/iou-tracker/internal/storage"
)

// SettingsService manages the owner's settings and the PIN/biometric lock.
type SettingsService struct {
	store     storage.Store
	scheduler *reminder.Scheduler
	tokens    *auth.TokenManager
	biometric auth.Biometric
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(store storage.Store, scheduler *reminder.Scheduler, tokens *auth.TokenManager, biometric auth.Biometric) *SettingsService {
	return &SettingsService{
		store:     store,
		scheduler: scheduler,
		tokens:    tokens,
		biometric: biometric,
	}
}

// Get returns the settings, applying defaults before the first save.
func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	settings, err := s.store.LoadSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	if settings == nil {
		def := models.DefaultSettings()
		return def, nil
	}
	return *settings, nil
}

// SettingsInput carries the editable settings fields. The PIN is managed
// through SetPin/DisablePin, never here.
type SettingsInput struct {
	Currency         string                `json:"currency"`
	DateFormat       string                `json:"dateFormat"`
	BiometricEnabled bool                  `json:"biometricEnabled"`
	Reminders        models.ReminderPolicy `json:"reminders"`
}

// Update replaces the editable settings and resyncs every scheduled
// reminder against the possibly-changed policy.
func (s *SettingsService) Update(ctx context.Context, in SettingsInput) (models.Settings, error) {
	if in.Reminders.NotificationTimeOfDay != "" {
		if _, _, err := in.Reminders.TimeOfDay(); err != nil {
			return models.Settings{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	if in.Reminders.DaysBeforeDueDate < 0 || in.Reminders.PeriodicIntervalDays < 0 {
		return models.Settings{}, fmt.Errorf("%w: reminder intervals must not be negative", ErrValidation)
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	settings.Currency = in.Currency
	settings.DateFormat = in.DateFormat
	settings.BiometricEnabled = in.BiometricEnabled
	settings.Reminders = in.Reminders

	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return models.Settings{}, err
	}

	if err := s.scheduler.Resync(ctx); err != nil {
		// Best-effort: the settings are saved, reminders catch up on the
		// next sweep.
		slog.Warn("Reminder resync after settings update failed", "error", err)
	}

	slog.Info("Settings updated")
	return settings, nil
}

// SetPin hashes and stores a new PIN and enables the lock.
func (s *SettingsService) SetPin(ctx context.Context, pin string) error {
	hash, err := auth.HashPin(pin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return err
	}
	settings.PinEnabled = true
	settings.PinHash = hash
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return err
	}

	slog.Info("PIN lock enabled")
	return nil
}

// DisablePin verifies the current PIN and removes the lock.
func (s *SettingsService) DisablePin(ctx context.Context, pin string) error {
	settings, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if err := auth.VerifyPin(settings.PinHash, pin); err != nil {
		return err
	}

	settings.PinEnabled = false
	settings.PinHash = ""
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return err
	}

	slog.Info("PIN lock disabled")
	return nil
}

// VerifyPin checks the PIN and issues a session token.
func (s *SettingsService) VerifyPin(ctx context.Context, pin string) (string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	if err := auth.VerifyPin(settings.PinHash, pin); err != nil {
		return "", err
	}
	return s.tokens.Generate()
}

// UnlockBiometric attempts a biometric unlock and issues a session token on
// success. Returns ErrInvalidPin-equivalent failure when biometrics are
// disabled, absent or rejected so callers fall back to the PIN.
func (s *SettingsService) UnlockBiometric(ctx context.Context) (string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	if !settings.BiometricEnabled || !s.biometric.HasHardware() || !s.biometric.IsEnrolled() {
		return "", auth.ErrInvalidPin
	}

	ok, err := s.biometric.Authenticate("Unlock IOU Tracker")
	if err != nil {
		return "", fmt.Errorf("biometric authentication failed: %w", err)
	}
	if !ok {
		return "", auth.ErrInvalidPin
	}
	return s.tokens.Generate()
}

// PinRequired reports whether the lock currently guards mutations.
func (s *SettingsService) PinRequired(ctx context.Context) (bool, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	return settings.PinEnabled, nil
}
