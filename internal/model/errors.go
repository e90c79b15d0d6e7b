package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Aircraft errors
	ErrAircraftNotFound = errors.New("aircraft not found")

	// Flight record errors
	ErrFlightNotFound = errors.New("flight record not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrInvalidTime   = errors.New("invalid time of day")
	ErrInvalidNumber = errors.New("invalid number")
	ErrFieldRequired = errors.New("field is required")
)

// FieldError ties a validation failure to the field that caused it.
// Multi-field operations report the first failing field.
type FieldError struct {
	Field string
	Err   error
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

// Unwrap exposes the underlying validation error for errors.Is
func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError creates a FieldError for the given field
func NewFieldError(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}
