// Package reminder computes when the next notification for a debt record
// should fire and keeps the notification registry consistent with that
// decision.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/jailbreak-0/iou-tracker/internal/metrics"
	"github.com/jailbreak-0/iou-tracker/internal/models"
	"github.com/jailbreak-0/iou-tracker/internal/notify"
	"github.com/jailbreak-0/iou-tracker/internal/storage"
)

const (
	// overdueClampDelay is how far into the future an already-due reminder
	// is pushed, so the owner is still notified about soon/overdue items
	// instead of the reminder being silently dropped.
	overdueClampDelay = 5 * time.Minute

	// minFireDelay is the smallest delay the notification registry accepts.
	minFireDelay = time.Second
)

// NextFireTime returns the candidate instant the next notification for rec
// should fire, before the minimum-delay floor is applied.
//
// Due-date records: dueDate minus the policy lead time, clamped to
// now+5m when not strictly in the future. Records without a due date:
// (lastReminderSentAt ?? createdDate) plus the periodic interval. In both
// cases the time-of-day component is then overwritten from the policy,
// preserving the candidate's date.
//
// The second return is false when the record is settled or the policy gives
// no usable cadence.
func NextFireTime(rec models.DebtRecord, policy models.ReminderPolicy, now time.Time) (time.Time, bool) {
	if rec.Settled {
		return time.Time{}, false
	}

	var candidate time.Time
	if rec.DueDate != nil {
		candidate = rec.DueDate.AddDate(0, 0, -policy.DaysBeforeDueDate)
		if !candidate.After(now) {
			candidate = now.Add(overdueClampDelay)
		}
	} else {
		if policy.PeriodicIntervalDays <= 0 {
			return time.Time{}, false
		}
		base := rec.CreatedDate
		if rec.LastReminderSentAt != nil {
			base = *rec.LastReminderSentAt
		}
		candidate = base.AddDate(0, 0, policy.PeriodicIntervalDays)
	}

	if hour, minute, err := policy.TimeOfDay(); err == nil {
		candidate = time.Date(candidate.Year(), candidate.Month(), candidate.Day(),
			hour, minute, 0, 0, candidate.Location())
	}

	return candidate, true
}

// FireDelay converts a candidate instant into a scheduling delay, flooring
// at one second because the registry requires a positive delay.
func FireDelay(candidate, now time.Time) time.Duration {
	d := candidate.Sub(now)
	if d < minFireDelay {
		return minFireDelay
	}
	return d
}

// Scheduler keeps the notification registry consistent with the record list.
type Scheduler struct {
	store    storage.Store
	notifier notify.Notifier
	enabled  bool
	now      func() time.Time
}

// NewScheduler creates a scheduler. enabled is the reminders feature flag;
// when false the scheduler only ever cancels.
func NewScheduler(store storage.Store, notifier notify.Notifier, enabled bool) *Scheduler {
	return &Scheduler{
		store:    store,
		notifier: notifier,
		enabled:  enabled,
		now:      time.Now,
	}
}

// Schedule replaces the pending notification for rec with a freshly computed
// one, or just cancels when rec is ineligible. Scheduling twice in
// succession leaves exactly one pending notification for the record.
//
// Failures against the notification registry are logged and swallowed: a
// missed reminder never blocks or fails the record mutation that caused it.
func (s *Scheduler) Schedule(rec models.DebtRecord, policy models.ReminderPolicy) {
	s.notifier.Cancel(rec.ID)

	if !s.enabled || !policy.Enabled || rec.Settled {
		metrics.RemindersSkipped.Inc()
		return
	}

	now := s.now()
	candidate, ok := NextFireTime(rec, policy, now)
	if !ok {
		metrics.RemindersSkipped.Inc()
		return
	}

	title, body := Message(rec, policy)
	if err := s.notifier.Schedule(rec.ID, FireDelay(candidate, now), title, body); err != nil {
		slog.Warn("Failed to schedule reminder", "record_id", rec.ID, "error", err)
		metrics.RemindersSkipped.Inc()
		return
	}

	metrics.RemindersScheduled.Inc()
	slog.Debug("Reminder scheduled", "record_id", rec.ID, "fire_at", candidate)
}

// Cancel drops the pending notification for a record. Settling or deleting
// a record must always cancel as a side effect.
func (s *Scheduler) Cancel(recordID string) {
	s.notifier.Cancel(recordID)
}

// Resync recomputes the whole registry from stored state: every eligible
// record gets a fresh notification, everything else is cancelled. Runs at
// startup and on the daily sweep.
func (s *Scheduler) Resync(ctx context.Context) error {
	records, err := s.store.LoadRecords(ctx)
	if err != nil {
		return err
	}
	settings, err := s.store.LoadSettings(ctx)
	if err != nil {
		return err
	}

	policy := models.DefaultReminderPolicy()
	if settings != nil {
		policy = settings.Reminders
	}

	for _, rec := range records {
		s.Schedule(rec, policy)
	}

	slog.Info("Reminder resync complete",
		"records", len(records),
		"pending", s.notifier.Pending(),
	)
	return nil
}
