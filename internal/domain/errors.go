// Package domain holds the catalog's core types and sentinel errors.
package domain

import "errors"

var (
	// ErrInvalidRequest signals malformed or out-of-bounds client input.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)

// SourceTag is the provenance value attached to every document the API
// returns, identifying the backing catalog.
const SourceTag = "gem5-vision"

// RequestError wraps ErrInvalidRequest with a client-facing message.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// Unwrap ties the error to the ErrInvalidRequest sentinel.
func (e *RequestError) Unwrap() error { return ErrInvalidRequest }

// NewInvalidRequest creates a validation error safe to surface to clients.
func NewInvalidRequest(message string) error {
	return &RequestError{Message: message}
}
