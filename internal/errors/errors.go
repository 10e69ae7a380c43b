package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents a category of API client failure.
// The set is closed: every failure surfaced by the API client maps to exactly one Kind.
type Kind string

const (
	// KindConfig indicates the client is missing required configuration (e.g. base URL).
	KindConfig Kind = "config"
	// KindToken indicates the auth token provider failed.
	KindToken Kind = "token"
	// KindNetwork indicates the transport failed before a response was received.
	KindNetwork Kind = "network"
	// KindTimeout indicates the request was aborted by its deadline or canceled.
	KindTimeout Kind = "timeout"
	// KindHTTP indicates the server answered with a non-success status.
	KindHTTP Kind = "http"
	// KindInvalidResponse indicates the response body was not the JSON the caller expects.
	KindInvalidResponse Kind = "invalid-response"
)

// APIError is the structured error returned by the API client.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
// Values are built once at the failure site and never mutated afterwards.
type APIError struct {
	// Kind categorizes the failure
	Kind Kind
	// Message is a human-readable error message
	Message string
	// Status is the HTTP status code, zero when no response was received
	Status int
	// Path is the request path as passed by the caller
	Path string
	// Cause is the underlying error that caused this error (optional)
	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// HasStatus reports whether a response status is attached.
func (e *APIError) HasStatus() bool {
	return e.Status != 0
}

// Config creates a configuration error. No request is attempted.
func Config(path, message string) *APIError {
	return &APIError{
		Kind:    KindConfig,
		Message: message,
		Path:    path,
	}
}

// Token wraps a token provider failure.
func Token(path string, cause error) *APIError {
	return &APIError{
		Kind:    KindToken,
		Message: "Failed to retrieve auth token",
		Path:    path,
		Cause:   cause,
	}
}

// Network wraps a transport failure that is not cancellation-shaped.
func Network(path string, cause error) *APIError {
	return &APIError{
		Kind:    KindNetwork,
		Message: "Network request failed",
		Path:    path,
		Cause:   cause,
	}
}

// Timeout wraps a cancellation-shaped transport failure.
func Timeout(path, message string, cause error) *APIError {
	return &APIError{
		Kind:    KindTimeout,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// HTTP creates an error for a non-success response status.
func HTTP(path string, status int, message string) *APIError {
	return &APIError{
		Kind:    KindHTTP,
		Message: message,
		Status:  status,
		Path:    path,
	}
}

// InvalidResponse creates an error for a body the client cannot hand back to the caller.
// cause may be nil.
func InvalidResponse(path string, status int, message string, cause error) *APIError {
	return &APIError{
		Kind:    KindInvalidResponse,
		Message: message,
		Status:  status,
		Path:    path,
		Cause:   cause,
	}
}

// StatusMessage is the fallback message for an error status without a usable body.
func StatusMessage(status int) string {
	return fmt.Sprintf("Request failed with status %d", status)
}

// isKind checks if an error has a specific kind.
func isKind(err error, kind Kind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsConfig checks if an error is a Config error.
func IsConfig(err error) bool {
	return isKind(err, KindConfig)
}

// IsToken checks if an error is a Token error.
func IsToken(err error) bool {
	return isKind(err, KindToken)
}

// IsNetwork checks if an error is a Network error.
func IsNetwork(err error) bool {
	return isKind(err, KindNetwork)
}

// IsTimeout checks if an error is a Timeout error.
func IsTimeout(err error) bool {
	return isKind(err, KindTimeout)
}

// IsHTTP checks if an error is an HTTP status error.
func IsHTTP(err error) bool {
	return isKind(err, KindHTTP)
}

// IsInvalidResponse checks if an error is an InvalidResponse error.
func IsInvalidResponse(err error) bool {
	return isKind(err, KindInvalidResponse)
}

// IsUnauthorizedStatus reports whether status is one the backend uses to deny access.
func IsUnauthorizedStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// IsUnauthorized reports whether err is an HTTP error carrying 401 or 403.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Kind == KindHTTP && IsUnauthorizedStatus(apiErr.Status)
}

// GetKind returns the Kind from an error, or empty string if not an APIError.
func GetKind(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// GetStatus returns the HTTP status from an error, or zero if none is attached.
func GetStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Message returns the display message for err without its cause chain.
// Non-APIError values fall back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
