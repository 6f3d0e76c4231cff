// Package service orchestrates the storage, calculator, reminder and
// category layers behind the API surface. Every mutation is a
// read-modify-write over the whole record list; concurrent mutations are
// last-write-wins by design for this single-user, single-device data.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jailbreak-0/iou-tracker/internal/calculator"
	"github.com/jailbreak-0/iou-tracker/internal/models"
	"github.com/jailbreak-0/iou-tracker/internal/reminder"
	"github.com/jailbreak-0/iou-tracker/internal/storage"
)

var (
	// ErrNotFound means no record with the given id exists.
	ErrNotFound = errors.New("record not found")
	// ErrValidation wraps all user-input failures; nothing is persisted
	// when it is returned.
	ErrValidation = errors.New("validation failed")
)

// RecordService implements the debt record operations.
type RecordService struct {
	store     storage.Store
	scheduler *reminder.Scheduler
	now       func() time.Time
}

// NewRecordService creates a RecordService.
func NewRecordService(store storage.Store, scheduler *reminder.Scheduler) *RecordService {
	return &RecordService{
		store:     store,
		scheduler: scheduler,
		now:       time.Now,
	}
}

// RecordInput carries the user form fields for create and update.
type RecordInput struct {
	Direction        models.Direction `json:"direction"`
	Amount           decimal.Decimal  `json:"amount"`
	CounterpartyName string           `json:"counterpartyName"`
	Note             string           `json:"note"`
	CategoryID       string           `json:"categoryId"`
	DueDate          *time.Time       `json:"dueDate"`
}

func (in RecordInput) validate() error {
	if !in.Direction.Valid() {
		return fmt.Errorf("%w: direction must be LENT or BORROWED", ErrValidation)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if strings.TrimSpace(in.CounterpartyName) == "" {
		return fmt.Errorf("%w: counterparty name required", ErrValidation)
	}
	return nil
}

// policy loads the reminder policy, falling back to defaults. Scheduling is
// best-effort, so a settings read failure only logs.
func (s *RecordService) policy(ctx context.Context) models.ReminderPolicy {
	settings, err := s.store.LoadSettings(ctx)
	if err != nil {
		slog.Warn("Failed to load settings for reminder policy", "error", err)
		return models.DefaultReminderPolicy()
	}
	if settings == nil {
		return models.DefaultReminderPolicy()
	}
	return settings.Reminders
}

// List returns all records, newest first.
func (s *RecordService) List(ctx context.Context) ([]models.DebtRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns one record by id.
func (s *RecordService) Get(ctx context.Context, id string) (*models.DebtRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create validates the form input and appends a new record. The id and
// creation date are assigned here and immutable afterward.
func (s *RecordService) Create(ctx context.Context, in RecordInput) (*models.DebtRecord, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	rec := models.DebtRecord{
		ID:               uuid.New().String(),
		Direction:        in.Direction,
		Amount:           in.Amount,
		CounterpartyName: strings.TrimSpace(in.CounterpartyName),
		Note:             in.Note,
		CategoryID:       in.CategoryID,
		CreatedDate:      s.now(),
		DueDate:          in.DueDate,
	}
	records = append(records, rec)
	if err := s.store.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	s.scheduler.Schedule(rec, s.policy(ctx))
	slog.Info("Record created", "record_id", rec.ID, "direction", rec.Direction, "amount", rec.Amount)
	return &rec, nil
}

// Update replaces the editable fields of a record, preserving id, creation
// date, settled state and reminder bookkeeping, then reschedules.
func (s *RecordService) Update(ctx context.Context, id string, in RecordInput) (*models.DebtRecord, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(records, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	rec := &records[idx]
	rec.Direction = in.Direction
	rec.Amount = in.Amount
	rec.CounterpartyName = strings.TrimSpace(in.CounterpartyName)
	rec.Note = in.Note
	rec.CategoryID = in.CategoryID
	rec.DueDate = in.DueDate

	if err := s.store.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	s.scheduler.Schedule(*rec, s.policy(ctx))
	slog.Info("Record updated", "record_id", rec.ID)
	return rec, nil
}

// Settle marks a record as resolved. Settled is terminal for reminders: the
// pending notification is always cancelled, even when the record was
// already settled.
func (s *RecordService) Settle(ctx context.Context, id string) (*models.DebtRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(records, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	rec := &records[idx]
	if !rec.Settled {
		now := s.now()
		rec.Settled = true
		rec.SettledDate = &now
		if err := s.store.SaveRecords(ctx, records); err != nil {
			return nil, err
		}
	}

	s.scheduler.Cancel(rec.ID)
	slog.Info("Record settled", "record_id", rec.ID)
	return rec, nil
}

// Delete removes a record and cancels its pending notification.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(records, id)
	if idx < 0 {
		return ErrNotFound
	}

	records = append(records[:idx], records[idx+1:]...)
	if err := s.store.SaveRecords(ctx, records); err != nil {
		return err
	}

	s.scheduler.Cancel(id)
	slog.Info("Record deleted", "record_id", id)
	return nil
}

// Acknowledge handles the owner interacting with a fired reminder:
// increment the sent count, stamp the time, persist, then reschedule. The
// reschedule happens only for unsettled records without a due date;
// due-date reminders are one-shot per due date.
func (s *RecordService) Acknowledge(ctx context.Context, id string) (*models.DebtRecord, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(records, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	rec := &records[idx]
	now := s.now()
	rec.RemindersSentCount++
	rec.LastReminderSentAt = &now
	if err := s.store.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	if rec.DueDate == nil && !rec.Settled {
		s.scheduler.Schedule(*rec, s.policy(ctx))
	}

	slog.Info("Reminder acknowledged", "record_id", rec.ID, "count", rec.RemindersSentCount)
	return rec, nil
}

// Summary recomputes the active totals from the full list. Never cached.
func (s *RecordService) Summary(ctx context.Context) (models.Summary, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	return calculator.CalculateSummary(records), nil
}

// Upcoming projects reminder fire times within the dashboard window.
// Read-only.
func (s *RecordService) Upcoming(ctx context.Context) ([]reminder.UpcomingEntry, error) {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return reminder.Upcoming(records, s.policy(ctx), s.now()), nil
}

func indexOf(records []models.DebtRecord, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
