package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/service"
	"lankadrive-backend/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

type fieldErrorResponse struct {
	Error       string                  `json:"error"`
	FieldErrors []validation.FieldError `json:"field_errors"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeFieldErrors reports validation failures. 422 keeps them apart from
// malformed-request 400s.
func writeFieldErrors(w http.ResponseWriter, fieldErrs []validation.FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, fieldErrorResponse{
		Error:       "validation failed",
		FieldErrors: fieldErrs,
	})
}

// writeServiceError maps service-level sentinel errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrNotPending):
		writeError(w, http.StatusConflict, "booking is not pending")
	case errors.Is(err, service.ErrDatesUnavailable):
		writeError(w, http.StatusConflict, "requested dates are no longer available")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
	case errors.Is(err, service.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "dates must be YYYY-MM-DD")
	default:
		logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
