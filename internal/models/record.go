package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates which way a debt runs.
type Direction string

const (
	// DirectionLent means the counterparty owes the owner.
	DirectionLent Direction = "LENT"
	// DirectionBorrowed means the owner owes the counterparty.
	DirectionBorrowed Direction = "BORROWED"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionLent || d == DirectionBorrowed
}

// Label returns a lowercase human label for message templates.
func (d Direction) Label() string {
	if d == DirectionBorrowed {
		return "borrowed"
	}
	return "lent"
}

// DebtRecord represents one informal debt between the owner and a counterparty.
type DebtRecord struct {
	// ID is the unique identifier for the record (UUID format).
	// Immutable after creation.
	ID string `json:"id"`

	// Direction is LENT (counterparty owes the owner) or BORROWED
	// (owner owes the counterparty).
	Direction Direction `json:"direction"`

	// Amount is the positive, currency-agnostic magnitude of the debt.
	Amount decimal.Decimal `json:"amount"`

	// CounterpartyName is the free-text name of the other person. Required.
	CounterpartyName string `json:"counterpartyName"`

	// Note is optional free text.
	Note string `json:"note,omitempty"`

	// CategoryID is a weak reference to a Category. Empty means the
	// default category.
	CategoryID string `json:"categoryId,omitempty"`

	// CreatedDate is when the record was created. Immutable after creation.
	CreatedDate time.Time `json:"createdDate"`

	// DueDate is the optional date the debt is expected to be resolved by.
	DueDate *time.Time `json:"dueDate,omitempty"`

	// Settled marks the debt as resolved. A settled record is excluded
	// from active totals and reminder scheduling.
	Settled bool `json:"settled"`

	// SettledDate is set iff Settled is true.
	SettledDate *time.Time `json:"settledDate,omitempty"`

	// LastReminderSentAt records the last acknowledged reminder, used as
	// the base for the periodic cadence.
	LastReminderSentAt *time.Time `json:"lastReminderSentAt,omitempty"`

	// RemindersSentCount counts acknowledged reminders.
	RemindersSentCount int `json:"remindersSentCount"`
}

// Active reports whether the record still counts toward totals and reminders.
func (r *DebtRecord) Active() bool {
	return !r.Settled
}
