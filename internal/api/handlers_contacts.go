package api

import "net/http"

// handleContacts handles GET /api/v1/contacts. Record creation uses it to
// offer counterparty name suggestions; a provider without access yields
// 403 and the client falls back to manual entry.
func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	list, err := s.contacts.ListContacts(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
