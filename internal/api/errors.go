package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jailbreak-0/iou-tracker/internal/auth"
	"github.com/jailbreak-0/iou-tracker/internal/category"
	"github.com/jailbreak-0/iou-tracker/internal/contacts"
	"github.com/jailbreak-0/iou-tracker/internal/notify"
	"github.com/jailbreak-0/iou-tracker/internal/service"
	"github.com/jailbreak-0/iou-tracker/internal/storage"
)

// Common error codes returned in the response body.
const (
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: errorBody{Code: code, Message: message}})
}

// parseJSONBody decodes a JSON request body, rejecting unknown fields.
func parseJSONBody(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// mapError translates the service sentinels into HTTP status codes.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, category.ErrInvalidName),
		errors.Is(err, auth.ErrWeakPin),
		errors.Is(err, auth.ErrPinNotSet):
		return http.StatusBadRequest, ErrCodeInvalidInput
	case errors.Is(err, auth.ErrInvalidPin),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized, ErrCodeUnauthorized
	case errors.Is(err, service.ErrFeatureDisabled),
		errors.Is(err, contacts.ErrPermissionDenied):
		return http.StatusForbidden, ErrCodeForbidden
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, category.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, category.ErrDuplicateName),
		errors.Is(err, category.ErrProtectedDefault):
		return http.StatusConflict, ErrCodeConflict
	case errors.Is(err, notify.ErrUnavailable):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable
	case errors.Is(err, storage.ErrStorage):
		return http.StatusInternalServerError, ErrCodeInternalError
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// respondServiceError logs and maps a service error.
func respondServiceError(w http.ResponseWriter, err error) {
	status, code := mapError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "an internal error occurred"
	}
	respondError(w, status, code, msg)
}
