// Package errors provides standardized error handling for remote API calls.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeNetwork         ErrorCode = "NETWORK_ERROR"
	ErrCodeHTTPRequest     ErrorCode = "HTTP_REQUEST_ERROR"
	ErrCodeIO              ErrorCode = "IO_ERROR"
	ErrCodeSerialization   ErrorCode = "SERIALIZATION_ERROR"
	ErrCodeDeserialization ErrorCode = "DESERIALIZATION_ERROR"

	ErrCodeEnvelopeRejected ErrorCode = "ENVELOPE_REJECTED"
	ErrCodeAPIError         ErrorCode = "API_ERROR"
	ErrCodeNotFound         ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"

	ErrCodeTokenInvalid     ErrorCode = "TOKEN_INVALID"
	ErrCodeTokenExpired     ErrorCode = "TOKEN_EXPIRED"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeNoProfile        ErrorCode = "NO_CANDIDATE_PROFILE"
	ErrCodeStateStore       ErrorCode = "STATE_STORE_ERROR"
)

// StandardError represents a structured application error. Every failure
// surfaced to a caller carries a human-readable Message.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewNetworkError creates a retryable transport-level error.
func NewNetworkError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNetwork,
		Message:   "Failed to reach the remote API",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewHTTPRequestError creates a non-retryable request construction error.
func NewHTTPRequestError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeHTTPRequest,
		Message:   "Failed to create HTTP request",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewIOError creates a retryable response read error.
func NewIOError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeIO,
		Message:   "Failed to read API response",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSerializationError creates a non-retryable request encoding error.
func NewSerializationError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSerialization,
		Message:   "Failed to serialize request payload",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDeserializationError creates a non-retryable response decoding error.
func NewDeserializationError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDeserialization,
		Message:   "Failed to decode API response",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEnvelopeError creates an error for a response whose envelope carries
// success=false. The envelope message wins; callers pass the generic
// fallback when the envelope had none.
func NewEnvelopeError(message string) *StandardError {
	if message == "" {
		message = "Request failed"
	}
	return &StandardError{
		Code:      ErrCodeEnvelopeRejected,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAPIError creates an error for a non-2xx status outside the special
// 401/404 cases.
func NewAPIError(status int, message string) *StandardError {
	if message == "" {
		message = "An error occurred"
	}
	return &StandardError{
		Code:      ErrCodeAPIError,
		Message:   message,
		Details:   fmt.Sprintf("status: %d", status),
		Retryable: isTransientHTTPStatus(status),
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError creates a non-retryable not-found error. Profile
// resolution treats this specially to clear stale cached ids.
func NewNotFoundError(resource, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   fmt.Sprintf("%s not found", resource),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnauthorizedError creates the error for a transport-level 401. The
// client clears persisted credentials before returning it.
func NewUnauthorizedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnauthorized,
		Message:   "Authentication required",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTokenInvalidError creates an error for a token that fails parsing.
func NewTokenInvalidError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTokenInvalid,
		Message:   "Stored token is malformed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTokenExpiredError creates an error for a token whose expiry passed.
func NewTokenExpiredError(expiry time.Time) *StandardError {
	return &StandardError{
		Code:      ErrCodeTokenExpired,
		Message:   "Session has expired",
		Details:   fmt.Sprintf("expired at %s", expiry.UTC().Format(time.RFC3339)),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable input validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoProfileError creates the error for operations that require a
// resolved candidate profile.
func NewNoProfileError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNoProfile,
		Message:   "No candidate profile is associated with this session; complete onboarding first",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStateStoreError creates an error for local state persistence failures.
func NewStateStoreError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStateStore,
		Message:   "Failed to persist local session state",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// Normalize ensures any error is a StandardError.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// CodeOf extracts the ErrorCode from err, or empty when err is not a
// StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsNotFound reports whether err is a RESOURCE_NOT_FOUND error.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

// IsUnauthorized reports whether err is an UNAUTHORIZED error.
func IsUnauthorized(err error) bool {
	return CodeOf(err) == ErrCodeUnauthorized
}

// isTransientHTTPError semantics follow the usual gateway statuses.
func isTransientHTTPStatus(statusCode int) bool {
	switch statusCode {
	case 500, 502, 503, 504:
		return true
	default:
		return false
	}
}
