package models

import "fmt"

// ValidationError reports a required field missing from the raw input.
// It fails the whole run before any output is written; referential gaps
// (dangling edge endpoints) are not validation errors and are dropped with
// a diagnostic count instead.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a missing or malformed
// required field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
