package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jailbreak-0/iou-tracker/internal/export"
	"github.com/jailbreak-0/iou-tracker/internal/metrics"
)

// handleExport handles GET /api/v1/export?format=csv|html. The response is
// served as an attachment with a dated filename.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "html" {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, "format must be csv or html")
		return
	}

	ctx := r.Context()
	records, err := s.records.List(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	now := time.Now()
	var body, contentType string
	switch format {
	case "csv":
		body, err = export.RenderCSV(records, categories)
		contentType = "text/csv; charset=utf-8"
	case "html":
		summary, sumErr := s.records.Summary(ctx)
		if sumErr != nil {
			respondServiceError(w, sumErr)
			return
		}
		settings, setErr := s.settings.Get(ctx)
		if setErr != nil {
			respondServiceError(w, setErr)
			return
		}
		body, err = export.RenderHTML(records, categories, summary, settings.Currency, now)
		contentType = "text/html; charset=utf-8"
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	metrics.ExportsRendered.WithLabelValues(format).Inc()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(format, now)))
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, body)
}
