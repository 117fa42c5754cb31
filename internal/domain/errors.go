package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record does not exist for the given identifier.
	ErrNotFound = errors.New("not found")

	// ErrCorruptRecord is returned when a persisted record exists but cannot be
	// decoded. Callers surface it to clients as not-found and log it instead.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrStorageWrite is returned (wrapped) when the underlying medium rejects a
	// write. The operation may be retried by the caller.
	ErrStorageWrite = errors.New("storage write failed")
)

// ValidationError reports a user-correctable problem with a single input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError returns a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
