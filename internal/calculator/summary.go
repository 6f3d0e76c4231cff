// Package calculator contains the pure aggregation logic over debt records.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/jailbreak-0/iou-tracker/internal/models"
)

// CalculateSummary reduces the record list into owed/owing/net totals.
// Settled records are excluded. Pure and deterministic; an empty input
// yields an all-zero summary.
func CalculateSummary(records []models.DebtRecord) models.Summary {
	owed := decimal.Zero
	owes := decimal.Zero

	for _, r := range records {
		if r.Settled {
			continue
		}
		switch r.Direction {
		case models.DirectionLent:
			owed = owed.Add(r.Amount)
		case models.DirectionBorrowed:
			owes = owes.Add(r.Amount)
		}
	}

	return models.Summary{
		TotalOwedToUser: owed,
		TotalUserOwes:   owes,
		NetBalance:      owed.Sub(owes),
	}
}
