package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jailbreak-0/iou-tracker/internal/metrics"
)

// Sink delivers a fired notification to the owner.
type Sink interface {
	Deliver(id, title, body string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(id, title, body string)

// Deliver calls f.
func (f SinkFunc) Deliver(id, title, body string) { f(id, title, body) }

// LogSink writes fired notifications to the structured log. It is the
// delivery channel for runtimes with no real notification surface.
func LogSink() Sink {
	return SinkFunc(func(id, title, body string) {
		slog.Info("Notification fired", "record_id", id, "title", title, "body", body)
	})
}

// Local is an in-process Notifier backed by timers. It enforces the
// one-pending-notification-per-id rule: scheduling an id that already has a
// timer stops and replaces it.
type Local struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	sink   Sink
}

var _ Notifier = (*Local)(nil)

// NewLocal creates a Local notifier delivering fired notifications to sink.
func NewLocal(sink Sink) *Local {
	return &Local{
		timers: make(map[string]*time.Timer),
		sink:   sink,
	}
}

// Schedule registers a notification to fire after delay, replacing any
// pending notification for the same id.
func (l *Local) Schedule(id string, delay time.Duration, title, body string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.timers[id]; ok {
		t.Stop()
	}
	l.timers[id] = time.AfterFunc(delay, func() {
		l.mu.Lock()
		delete(l.timers, id)
		l.mu.Unlock()

		metrics.NotificationsDelivered.Inc()
		l.sink.Deliver(id, title, body)
	})
	return nil
}

// Cancel drops the pending notification for id, if any.
func (l *Local) Cancel(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.timers[id]; ok {
		t.Stop()
		delete(l.timers, id)
	}
}

// CancelAll drops every pending notification.
func (l *Local) CancelAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for id, t := range l.timers {
		t.Stop()
		delete(l.timers, id)
	}
}

// Pending returns the number of currently scheduled notifications.
func (l *Local) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}
