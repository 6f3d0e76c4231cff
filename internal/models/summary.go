package models

import "github.com/shopspring/decimal"

// Summary holds derived totals over the active (unsettled) records.
// It is recomputed on every read and never persisted or cached.
type Summary struct {
	// TotalOwedToUser is the sum of active LENT amounts.
	TotalOwedToUser decimal.Decimal `json:"totalOwedToUser"`

	// TotalUserOwes is the sum of active BORROWED amounts.
	TotalUserOwes decimal.Decimal `json:"totalUserOwes"`

	// NetBalance is always TotalOwedToUser - TotalUserOwes.
	NetBalance decimal.Decimal `json:"netBalance"`
}
