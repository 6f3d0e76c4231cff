package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ReminderPolicy controls when reminder notifications fire.
type ReminderPolicy struct {
	// Enabled is the master switch; when false no reminders are scheduled.
	Enabled bool `json:"enabled"`

	// DaysBeforeDueDate is the lead time for due-date-based reminders.
	DaysBeforeDueDate int `json:"daysBeforeDueDate"`

	// PeriodicIntervalDays is the cadence for records without a due date.
	PeriodicIntervalDays int `json:"periodicIntervalDays"`

	// NotificationTimeOfDay anchors scheduled notifications to a
	// wall-clock time, formatted "HH:MM".
	NotificationTimeOfDay string `json:"notificationTimeOfDay"`

	// MessageTemplate is the notification body with {name}, {type} and
	// {amount} placeholders.
	MessageTemplate string `json:"messageTemplate"`
}

// TimeOfDay parses NotificationTimeOfDay into hour and minute.
func (p ReminderPolicy) TimeOfDay() (hour, minute int, err error) {
	parts := strings.SplitN(p.NotificationTimeOfDay, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time of day %q", p.NotificationTimeOfDay)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", p.NotificationTimeOfDay)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", p.NotificationTimeOfDay)
	}
	return hour, minute, nil
}

// DefaultReminderPolicy returns the policy used until the owner changes it.
func DefaultReminderPolicy() ReminderPolicy {
	return ReminderPolicy{
		Enabled:               true,
		DaysBeforeDueDate:     1,
		PeriodicIntervalDays:  7,
		NotificationTimeOfDay: "09:00",
		MessageTemplate:       "Reminder: {amount} {type} with {name}",
	}
}

// Settings is the owner's persisted preferences object.
type Settings struct {
	// PinEnabled gates mutating operations behind PIN verification.
	PinEnabled bool `json:"pinEnabled"`

	// BiometricEnabled allows biometric auth as a PIN alternative when
	// the capability is present.
	BiometricEnabled bool `json:"biometricEnabled"`

	// PinHash is the bcrypt hash of the PIN. The raw PIN is never stored.
	PinHash string `json:"pin,omitempty"`

	// Currency is the display currency code.
	Currency string `json:"currency"`

	// DateFormat is the display date layout.
	DateFormat string `json:"dateFormat"`

	// Reminders is the reminder scheduling policy.
	Reminders ReminderPolicy `json:"reminders"`
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() Settings {
	return Settings{
		Currency:   "USD",
		DateFormat: "2006-01-02",
		Reminders:  DefaultReminderPolicy(),
	}
}
