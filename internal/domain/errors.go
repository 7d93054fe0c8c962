package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyReviewed is returned when a user already reviewed a product
	ErrAlreadyReviewed = errors.New("you have already reviewed this product")

	// ErrAlreadyExists is returned when a resource already exists
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrUnauthenticated is returned when a write is attempted without credentials
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the caller may not mutate the resource
	ErrForbidden = errors.New("operation not permitted")

	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
)

// ValidationError is a field-attributed validation failure with a
// human-readable message. It matches ErrInvalidInput under errors.Is so
// handlers can map it to a 400 without knowing the field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
