package upload

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the category of upload error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates the request never got a response
	// (connection refused, DNS failure, timeout, ...)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeHTTP indicates the server rejected the upload with a
	// non-2xx status before any log output was produced
	ErrTypeHTTP
	// ErrTypeStream indicates the response body broke off while the
	// progress log was still streaming
	ErrTypeStream
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeStream:
		return "Stream Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// UploadError represents a failed or interrupted upload exchange
type UploadError struct {
	Type       ErrorType
	Message    string
	StatusCode int    // HTTP status code (ErrTypeHTTP only)
	Reason     string // HTTP reason phrase (ErrTypeHTTP only)
	Err        error  // Underlying error (if any)
}

// Error implements the error interface
func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *UploadError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates an error for a request that never reached the server
func NewNetworkError(message string, err error) *UploadError {
	return &UploadError{
		Type:    ErrTypeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewHTTPError creates an error for a non-2xx response
func NewHTTPError(statusCode int, reason string) *UploadError {
	return &UploadError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("server rejected upload with status %d", statusCode),
		StatusCode: statusCode,
		Reason:     reason,
	}
}

// NewStreamError creates an error for a body read that failed mid-stream
func NewStreamError(message string, err error) *UploadError {
	return &UploadError{
		Type:    ErrTypeStream,
		Message: message,
		Err:     err,
	}
}

// IsHTTPError checks if an error is a non-2xx rejection
func IsHTTPError(err error) bool {
	if upErr, ok := err.(*UploadError); ok {
		return upErr.Type == ErrTypeHTTP
	}
	return false
}

// IsNetworkError checks if an error is a transport-level failure
func IsNetworkError(err error) bool {
	if upErr, ok := err.(*UploadError); ok {
		return upErr.Type == ErrTypeNetwork
	}
	return false
}

// IsStreamError checks if an error is a mid-stream disconnection
func IsStreamError(err error) bool {
	if upErr, ok := err.(*UploadError); ok {
		return upErr.Type == ErrTypeStream
	}
	return false
}

// reasonPhrase extracts the reason phrase from a response status line,
// e.g. "500 Internal Server Error" → "Internal Server Error". Falls back
// to the standard text for the code when the server sent none.
func reasonPhrase(resp *http.Response) string {
	prefix := fmt.Sprintf("%d ", resp.StatusCode)
	if strings.HasPrefix(resp.Status, prefix) {
		if phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, prefix)); phrase != "" {
			return phrase
		}
	}
	if phrase := http.StatusText(resp.StatusCode); phrase != "" {
		return phrase
	}
	return resp.Status
}
