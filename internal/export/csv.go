// Package export serializes debt records to CSV or a printable HTML
// document. Renderers are pure: writing or sharing the output is the
// caller's responsibility.
package export

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/jailbreak-0/iou-tracker/internal/models"
)

const dateLayout = "2006-01-02"

// csvHeader is the fixed first row of every CSV export.
var csvHeader = []string{"Type", "Name", "Amount", "Note", "Created", "Due", "Settled On", "Status", "Category"}

// RenderCSV produces a CSV document: header row first, then one row per
// record in input order. Deterministic given identical input.
func RenderCSV(records []models.DebtRecord, categories []models.Category) (string, error) {
	names := categoryNames(categories)

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			string(r.Direction),
			r.CounterpartyName,
			r.Amount.StringFixed(2),
			r.Note,
			r.CreatedDate.Format(dateLayout),
			formatOptionalDate(r.DueDate),
			formatOptionalDate(r.SettledDate),
			statusLabel(r),
			names[r.CategoryID],
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return sb.String(), nil
}

// Filename returns a date-stamped export file name, e.g.
// "iou-export-2026-08-29.csv".
func Filename(ext string, now time.Time) string {
	return fmt.Sprintf("iou-export-%s.%s", now.Format(dateLayout), ext)
}

func statusLabel(r models.DebtRecord) string {
	if r.Settled {
		return "Settled"
	}
	return "Active"
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// categoryNames maps category ids to display names. The empty id maps to
// the default category's name.
func categoryNames(categories []models.Category) map[string]string {
	names := make(map[string]string, len(categories)+1)
	for _, c := range categories {
		names[c.ID] = c.Name
		if c.IsDefault {
			names[""] = c.Name
		}
	}
	return names
}
