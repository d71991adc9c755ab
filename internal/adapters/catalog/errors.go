package catalog

import (
	"errors"
	"fmt"
)

// Common catalog source error types
var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidKey        = errors.New("invalid document key")
	ErrSourceUnavailable = errors.New("catalog source unavailable")
	ErrTimeout           = errors.New("operation timeout")
)

// SourceError represents a catalog source error with additional context
type SourceError struct {
	Op        string // Operation that failed (e.g., "Read", "List")
	Key       string // Document key involved in the operation
	Err       error  // Underlying error
	Retryable bool   // Whether the operation can be retried
}

func (e *SourceError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("catalog %s operation failed for key '%s': %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("catalog %s operation failed: %v", e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error indicates a retryable condition
func (e *SourceError) IsRetryable() bool {
	return e.Retryable
}

// NewSourceError creates a new SourceError
func NewSourceError(op, key string, err error, retryable bool) *SourceError {
	return &SourceError{
		Op:        op,
		Key:       key,
		Err:       err,
		Retryable: retryable,
	}
}

// IsNotFound returns true if the error indicates a missing document
func IsNotFound(err error) bool {
	var sourceErr *SourceError
	if errors.As(err, &sourceErr) {
		return errors.Is(sourceErr.Err, ErrDocumentNotFound)
	}
	return errors.Is(err, ErrDocumentNotFound)
}

// IsRetryable returns true if the error indicates a retryable condition
func IsRetryable(err error) bool {
	var sourceErr *SourceError
	if errors.As(err, &sourceErr) {
		return sourceErr.IsRetryable()
	}

	return errors.Is(err, ErrSourceUnavailable) || errors.Is(err, ErrTimeout)
}
