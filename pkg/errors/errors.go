// Package errors provides typed errors for the relay pipeline
package errors

import "fmt"

// baseError is the base implementation for all error types
type baseError struct {
	msg string
}

func (e *baseError) Error() string {
	return e.msg
}

// ValidationError represents a client input error (400)
type ValidationError struct {
	baseError
}

// NewValidationError creates a new ValidationError
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{baseError{msg: msg}}
}

// ConfigurationError represents a missing-configuration error (500)
type ConfigurationError struct {
	baseError
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(msg string) *ConfigurationError {
	return &ConfigurationError{baseError{msg: msg}}
}

// UpstreamError represents a non-success response from the media resolver (500)
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("resolver returned status %d", e.Status)
}

// NewUpstreamError creates a new UpstreamError with a truncated response body
func NewUpstreamError(status int, body string) *UpstreamError {
	return &UpstreamError{Status: status, Body: body}
}

// NoMediaFoundError reports a resolver payload without any recognized media URL (500)
type NoMediaFoundError struct {
	RawPayload string
}

func (e *NoMediaFoundError) Error() string {
	return "no media URL found in resolver response"
}

// NewNoMediaFoundError creates a new NoMediaFoundError carrying the raw payload
func NewNoMediaFoundError(rawPayload string) *NoMediaFoundError {
	return &NoMediaFoundError{RawPayload: rawPayload}
}

// DownloadError represents a failed media download during fallback (500)
type DownloadError struct {
	baseError
}

// NewDownloadError creates a new DownloadError
func NewDownloadError(msg string) *DownloadError {
	return &DownloadError{baseError{msg: msg}}
}

// UploadError represents a failed upload to the messaging platform (500)
type UploadError struct {
	baseError
}

// NewUploadError creates a new UploadError
func NewUploadError(msg string) *UploadError {
	return &UploadError{baseError{msg: msg}}
}

// InternalError represents an internal server error (500)
type InternalError struct {
	baseError
}

// NewInternalError creates a new InternalError
func NewInternalError(msg string) *InternalError {
	return &InternalError{baseError{msg: msg}}
}

// Truncate bounds upstream payloads included in responses and logs
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
