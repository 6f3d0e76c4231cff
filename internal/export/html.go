package export

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/jailbreak-0/iou-tracker/internal/models"
)

// htmlDocument is the printable report the owner turns into a PDF.
// Styling is kept inline so the document is self-contained.
const htmlDocument = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>IOU Tracker Export</title>
<style>
body { font-family: -apple-system, Helvetica, Arial, sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; font-size: 0.9em; }
th { background: #f0f0f0; }
.summary { margin-top: 1em; }
.summary td { border: none; padding: 2px 10px 2px 0; }
.settled { color: #888; }
.generated { color: #888; font-size: 0.8em; margin-top: 2em; }
</style>
</head>
<body>
<h1>Debt Records</h1>
<table class="summary">
<tr><td>Owed to me</td><td>{{.Summary.TotalOwedToUser}} {{.Currency}}</td></tr>
<tr><td>I owe</td><td>{{.Summary.TotalUserOwes}} {{.Currency}}</td></tr>
<tr><td>Net balance</td><td>{{.Summary.NetBalance}} {{.Currency}}</td></tr>
</table>
<table>
<tr><th>Type</th><th>Name</th><th>Amount</th><th>Note</th><th>Created</th><th>Due</th><th>Status</th><th>Category</th></tr>
{{range .Rows}}<tr{{if .Settled}} class="settled"{{end}}><td>{{.Type}}</td><td>{{.Name}}</td><td>{{.Amount}}</td><td>{{.Note}}</td><td>{{.Created}}</td><td>{{.Due}}</td><td>{{.Status}}</td><td>{{.Category}}</td></tr>
{{end}}</table>
<p class="generated">Generated {{.GeneratedAt}}</p>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("export").Parse(htmlDocument))

type htmlRow struct {
	Type     string
	Name     string
	Amount   string
	Note     string
	Created  string
	Due      string
	Status   string
	Category string
	Settled  bool
}

type htmlData struct {
	Summary     models.Summary
	Currency    string
	Rows        []htmlRow
	GeneratedAt string
}

// RenderHTML produces the printable HTML document for the record list and a
// precomputed summary. Deterministic given identical inputs and now.
func RenderHTML(records []models.DebtRecord, categories []models.Category, summary models.Summary, currency string, now time.Time) (string, error) {
	names := categoryNames(categories)

	rows := make([]htmlRow, len(records))
	for i, r := range records {
		rows[i] = htmlRow{
			Type:     string(r.Direction),
			Name:     r.CounterpartyName,
			Amount:   r.Amount.StringFixed(2),
			Note:     r.Note,
			Created:  r.CreatedDate.Format(dateLayout),
			Due:      formatOptionalDate(r.DueDate),
			Status:   statusLabel(r),
			Category: names[r.CategoryID],
			Settled:  r.Settled,
		}
	}

	var sb strings.Builder
	err := htmlTemplate.Execute(&sb, htmlData{
		Summary:     summary,
		Currency:    currency,
		Rows:        rows,
		GeneratedAt: now.Format(dateLayout),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render HTML export: %w", err)
	}
	return sb.String(), nil
}
