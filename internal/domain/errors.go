// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError wraps a field-level validation failure with enough
// context to build a user-facing message without leaking internals.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// IsValidationError reports whether err is one of the entity validation
// failures. API handlers use this to map bad input to 400 instead of 500.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrValidation,
		ErrEmptyUserID, ErrEmptyName, ErrEmptyEmail, ErrInvalidEmail,
		ErrEmptyPassword, ErrPasswordTooShort, ErrPasswordTooLong,
		ErrEmptyHashedPassword,
		ErrTaskIDEmpty, ErrTaskUserIDEmpty, ErrTaskTitleEmpty, ErrInvalidPriority,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
