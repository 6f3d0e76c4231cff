package api

import "net/http"

// handleAdsStatus handles GET /api/v1/ads/status.
func (s *Server) handleAdsStatus(w http.ResponseWriter, r *http.Request) {
	show, err := s.gate.ShouldShowAds(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"showAds": show})
}

// handleInterstitial handles POST /api/v1/ads/interstitial. The client
// asks before presenting an interstitial; the gate applies the frequency
// caps and the ad-free entitlement.
func (s *Server) handleInterstitial(w http.ResponseWriter, r *http.Request) {
	allowed, err := s.gate.RequestInterstitial(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"show": allowed})
}

// handlePurchaseUnlock handles POST /api/v1/purchase/unlock and records the
// ad-free entitlement.
func (s *Server) handlePurchaseUnlock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TransactionID string `json:"transactionId"`
	}
	if err := parseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, "invalid request body")
		return
	}

	ent, err := s.gate.Unlock(r.Context(), req.TransactionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ent)
}
