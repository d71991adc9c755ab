package services

import (
	"errors"
	"strings"
)

// ValidationError carries the user-facing detail lines for a rejected request.
// Handlers map it to a 400 response with the details in the body.
type ValidationError struct {
	Details []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return strings.Join(e.Details, "; ")
}

// NewValidationError creates a validation error from detail lines
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

// MissingFieldError creates the canonical "Missing field" validation error
func MissingFieldError(field string) *ValidationError {
	return NewValidationError("Missing field: " + field)
}

// IsValidationError checks whether err is a request validation failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidationDetails extracts the detail lines, or nil for other errors
func ValidationDetails(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Details
	}
	return nil
}
