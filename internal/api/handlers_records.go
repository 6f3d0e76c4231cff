package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jailbreak-0/iou-tracker/internal/service"
)

// handleListRecords handles GET /api/v1/records.
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.records.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// handleCreateRecord handles POST /api/v1/records.
func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var in service.RecordInput
	if err := parseJSONBody(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, "invalid request body")
		return
	}

	rec, err := s.records.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// handleGetRecord handles GET /api/v1/records/{id}.
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// handleUpdateRecord handles PUT /api/v1/records/{id}.
func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	var in service.RecordInput
	if err := parseJSONBody(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, "invalid request body")
		return
	}

	rec, err := s.records.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// handleDeleteRecord handles DELETE /api/v1/records/{id}.
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.records.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSettleRecord handles POST /api/v1/records/{id}/settle.
func (s *Server) handleSettleRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Settle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// handleAcknowledgeRecord handles POST /api/v1/records/{id}/acknowledge.
// The client calls it after presenting a fired reminder to the owner.
func (s *Server) handleAcknowledgeRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Acknowledge(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// handleSummary handles GET /api/v1/summary.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.records.Summary(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// handleUpcoming handles GET /api/v1/reminders/upcoming.
func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	entries, err := s.records.Upcoming(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
