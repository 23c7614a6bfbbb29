// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// Adapters map them to status codes or UI behaviour as they see fit.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrValidation indicates a business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates the quote store could not be reached or
	// answered with a non-success status.
	ErrUnavailable = errors.New("unavailable")

	// ErrMalformedResponse indicates the quote store answered with a body
	// that does not match the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
	// StatusCode is the HTTP status returned by the service, zero for
	// transport level failures.
	StatusCode int
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// NewUnavailableStatusError creates an unavailable error for a non-2xx answer.
func NewUnavailableStatusError(service string, status int) error {
	return &UnavailableError{
		Service:    service,
		Reason:     fmt.Sprintf("unexpected status %d", status),
		StatusCode: status,
	}
}

// MalformedResponseError describes a response body that could not be decoded.
type MalformedResponseError struct {
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: malformed response: %v", e.Operation, e.Cause)
	}

	return e.Operation + ": malformed response"
}

// Unwrap exposes both the sentinel and the decode cause.
func (e *MalformedResponseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrMalformedResponse}
	}

	return []error{ErrMalformedResponse, e.Cause}
}

// NewMalformedResponseError creates a malformed response error.
func NewMalformedResponseError(operation string, cause error) error {
	return &MalformedResponseError{Operation: operation, Cause: cause}
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsMalformedResponse checks if an error is a malformed response error.
func IsMalformedResponse(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}
