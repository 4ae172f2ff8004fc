// Package errors provides standardized error handling for the credit
// submission pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidConfig    ErrorCode = "INVALID_CONFIG"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeSchemaViolation  ErrorCode = "SCHEMA_VIOLATION"
	ErrCodeBackendRejected  ErrorCode = "BACKEND_REJECTED"
	ErrCodeTransportError   ErrorCode = "TRANSPORT_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationFailedError creates a non-retryable business-rule error.
// The user must correct the form before submitting again.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Credit application validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaViolationError creates a non-retryable wire-contract error.
func NewSchemaViolationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaViolation,
		Message:   "Payload does not match the backend wire schema",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBackendRejectedError creates an error for an application-level
// rejection by the loan-origination backend. Retryable because the user
// may resubmit manually; nothing retries automatically.
func NewBackendRejectedError(status int, message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBackendRejected,
		Message:   message,
		Details:   fmt.Sprintf("httpStatus: %d", status),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTransportError creates an error for network or response-parsing failures.
func NewTransportError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTransportError,
		Message:   "Failed to reach the loan-origination backend",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidConfigError creates a non-retryable startup configuration error.
func NewInvalidConfigError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidConfig,
		Message:   "Invalid configuration",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
