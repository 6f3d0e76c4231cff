package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jailbreak-0/iou-tracker/internal/calculator"
	"github.com/jailbreak-0/iou-tracker/internal/models"
)

func testCategories() []models.Category {
	return []models.Category{
		{ID: "general", Name: "General", IsDefault: true},
		{ID: "friends", Name: "Friends"},
	}
}

func testRecords() []models.DebtRecord {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	settledOn := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	return []models.DebtRecord{
		{
			ID:               "rec-1",
			Direction:        models.DirectionLent,
			Amount:           decimal.NewFromFloat(50.5),
			CounterpartyName: `Alice "Al" Byrne`,
			Note:             "lunch, twice",
			CategoryID:       "friends",
			CreatedDate:      time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC),
			DueDate:          &due,
		},
		{
			ID:               "rec-2",
			Direction:        models.DirectionBorrowed,
			Amount:           decimal.NewFromInt(20),
			CounterpartyName: "Bob",
			CreatedDate:      time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
			Settled:          true,
			SettledDate:      &settledOn,
		},
	}
}

func TestRenderCSV(t *testing.T) {
	out, err := RenderCSV(testRecords(), testCategories())
	if err != nil {
		t.Fatalf("RenderCSV failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	// Header row first, then one row per record.
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want 3 (header + 2 records)", len(rows))
	}
	if rows[0][0] != "Type" || rows[0][1] != "Name" || rows[0][2] != "Amount" {
		t.Errorf("header = %v", rows[0])
	}

	alice := rows[1]
	if alice[0] != "LENT" {
		t.Errorf("type = %q, want LENT", alice[0])
	}
	if alice[1] != `Alice "Al" Byrne` {
		t.Errorf("name not preserved through quoting: %q", alice[1])
	}
	if alice[2] != "50.50" {
		t.Errorf("amount = %q, want 50.50", alice[2])
	}
	if alice[4] != "2026-08-01" || alice[5] != "2026-09-15" {
		t.Errorf("dates = %q, %q", alice[4], alice[5])
	}
	if alice[7] != "Active" || alice[8] != "Friends" {
		t.Errorf("status/category = %q/%q", alice[7], alice[8])
	}

	bob := rows[2]
	if bob[5] != "" {
		t.Errorf("empty due date should render blank, got %q", bob[5])
	}
	if bob[6] != "2026-08-10" || bob[7] != "Settled" {
		t.Errorf("settled columns = %q/%q", bob[6], bob[7])
	}
	if bob[8] != "General" {
		t.Errorf("missing category should fall back to default, got %q", bob[8])
	}
}

func TestRenderCSVDeterministic(t *testing.T) {
	a, err := RenderCSV(testRecords(), testCategories())
	if err != nil {
		t.Fatalf("RenderCSV failed: %v", err)
	}
	b, err := RenderCSV(testRecords(), testCategories())
	if err != nil {
		t.Fatalf("RenderCSV failed: %v", err)
	}
	if a != b {
		t.Error("identical input produced different CSV output")
	}
}

func TestRenderCSVEmpty(t *testing.T) {
	out, err := RenderCSV(nil, testCategories())
	if err != nil {
		t.Fatalf("RenderCSV failed: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("row count = %d, want header only", len(rows))
	}
}

func TestRenderHTML(t *testing.T) {
	records := testRecords()
	summary := calculator.CalculateSummary(records)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	out, err := RenderHTML(records, testCategories(), summary, "USD", now)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Alice &#34;Al&#34; Byrne", // template escaping
		"50.50",
		"Settled",
		"Friends",
		"2026-08-29",
		summary.NetBalance.String(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)
	if got := Filename("csv", now); got != "iou-export-2026-08-29.csv" {
		t.Errorf("Filename = %q", got)
	}
}
