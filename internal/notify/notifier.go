// Package notify abstracts the local notification capability. The capability
// may be entirely absent in a given runtime; callers branch on the explicit
// availability flag returned by Detect instead of probing by failure.
package notify

import (
	"errors"
	"time"
)

// ErrUnavailable is returned by the disabled notifier. Callers log it and
// carry on; reminders are a convenience, not a correctness guarantee.
var ErrUnavailable = errors.New("notification service unavailable")

// Notifier is the platform notification registry. At most one pending
// notification exists per id: Schedule replaces any earlier one.
type Notifier interface {
	// Schedule registers a notification to fire after delay.
	Schedule(id string, delay time.Duration, title, body string) error

	// Cancel drops the pending notification for id, if any.
	Cancel(id string)

	// CancelAll drops every pending notification.
	CancelAll()

	// Pending returns the number of currently scheduled notifications.
	Pending() int
}

// Disabled is the notifier used when the capability is absent.
type Disabled struct{}

// Schedule always reports the capability as unavailable.
func (Disabled) Schedule(string, time.Duration, string, string) error { return ErrUnavailable }

// Cancel is a no-op.
func (Disabled) Cancel(string) {}

// CancelAll is a no-op.
func (Disabled) CancelAll() {}

// Pending always returns zero.
func (Disabled) Pending() int { return 0 }
