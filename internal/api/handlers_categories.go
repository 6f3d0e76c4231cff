package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jailbreak-0/iou-tracker/internal/category"
)

// handleListCategories handles GET /api/v1/categories.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.categories.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cats)
}

// handleCreateCategory handles POST /api/v1/categories.
func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
		Icon  string `json:"icon"`
	}
	if err := parseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, "invalid request body")
		return
	}

	cat, err := s.categories.Create(r.Context(), req.Name, req.Color, req.Icon)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, cat)
}

// handleUpdateCategory handles PUT /api/v1/categories/{id}. Absent fields
// keep their current values.
func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var upd category.Update
	if err := parseJSONBody(r, &upd); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidInput, "invalid request body")
		return
	}

	cat, err := s.categories.Update(r.Context(), mux.Vars(r)["id"], upd)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cat)
}

// handleDeleteCategory handles DELETE /api/v1/categories/{id}.
func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.categories.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
