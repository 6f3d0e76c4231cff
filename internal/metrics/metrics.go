// Package metrics registers the Prometheus instruments for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RemindersScheduled counts reminder notifications handed to the notifier.
	RemindersScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iou_reminders_scheduled_total",
		Help: "Number of reminder notifications scheduled.",
	})

	// RemindersSkipped counts records passed over because the policy is off,
	// the record is ineligible or the capability is absent.
	RemindersSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iou_reminders_skipped_total",
		Help: "Number of reminder scheduling attempts skipped.",
	})

	// NotificationsDelivered counts notifications that actually fired.
	NotificationsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iou_notifications_delivered_total",
		Help: "Number of notifications delivered to the owner.",
	})

	// InterstitialsShown counts interstitial ads allowed by the gate.
	InterstitialsShown = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iou_interstitials_shown_total",
		Help: "Number of interstitial ad requests allowed.",
	})

	// InterstitialsSuppressed counts interstitial requests blocked by the
	// frequency caps or the ad-free entitlement.
	InterstitialsSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iou_interstitials_suppressed_total",
		Help: "Number of interstitial ad requests suppressed.",
	})

	// ExportsRendered counts export documents rendered, by format.
	ExportsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "iou_exports_rendered_total",
		Help: "Number of export documents rendered.",
	}, []string{"format"})

	// RequestsTotal counts API requests by route and status class.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "iou_http_requests_total",
		Help: "Number of HTTP requests handled.",
	}, []string{"method", "path", "status"})
)
