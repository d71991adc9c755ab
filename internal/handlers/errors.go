package handlers

import (
	"net/http"

	"naraigoto-api/internal/repositories"
	"naraigoto-api/internal/services"
)

// ErrorResponse is the envelope used by the booking and like endpoints.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// PlainError is the envelope used by the lesson and review read endpoints.
type PlainError struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// statusFor maps the error taxonomy onto HTTP status codes: request
// validation -> 400, missing entity -> 404, failed conditional write or
// uniqueness violation -> 409, anything else -> 500.
func statusFor(err error) int {
	switch {
	case services.IsValidationError(err):
		return http.StatusBadRequest
	case repositories.IsNotFound(err):
		return http.StatusNotFound
	case repositories.IsConflict(err), repositories.IsDuplicate(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
