package api

import (
	"net/http"

	"github.com/jailbreak-0/iou-tracker/internal/service"
)

// handleGetSettings handles GET /api/v1/settings. The PIN hash never
// leaves the process; the settings model omits it from JSON when empty and
// the handler clears it before encoding.
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Get(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	settings.PinHash = ""
	respondJSON(w, http.StatusOK, settings)
}

// handleUpdateSettings handles PUT /api/v1/settings.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in service.SettingsInput
	if err := parseJSONBody(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, "invalid request body")
		return
	}

	settings, err := s.settings.Update(r.Context(), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	settings.PinHash = ""
	respondJSON(w, http.StatusOK, settings)
}

type pinRequest struct {
	Pin string `json:"pin"`
}

// handleSetPin handles POST /api/v1/auth/pin.
func (s *Server) handleSetPin(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := parseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, "invalid request body")
		return
	}
	if err := s.settings.SetPin(r.Context(), req.Pin); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDisablePin handles POST /api/v1/auth/pin/disable. The current PIN
// must be supplied.
func (s *Server) handleDisablePin(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := parseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, "invalid request body")
		return
	}
	if err := s.settings.DisablePin(r.Context(), req.Pin); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type tokenResponse struct {
	Token string `json:"token"`
}

// handleVerifyPin handles POST /api/v1/auth/pin/verify and issues a
// session token on success.
func (s *Server) handleVerifyPin(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := parseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, "invalid request body")
		return
	}
	token, err := s.settings.VerifyPin(r.Context(), req.Pin)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// handleBiometricUnlock handles POST /api/v1/auth/biometric.
func (s *Server) handleBiometricUnlock(w http.ResponseWriter, r *http.Request) {
	token, err := s.settings.UnlockBiometric(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// handleAuthStatus handles GET /api/v1/auth/status. It tells the client
// whether an unlock is needed before the data routes will answer.
func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	required, err := s.settings.PinRequired(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"pinRequired": required})
}
