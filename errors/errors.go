package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies pipeline errors.
type Kind int

const (
	// KindInvalidURL indicates the base address and request path do not form
	// a valid absolute URL.
	KindInvalidURL Kind = iota
	// KindInvalidResponse indicates the transport produced a response the
	// pipeline cannot interpret as an HTTP response.
	KindInvalidResponse
	// KindHTTP indicates a non-2xx HTTP status code.
	KindHTTP
	// KindDecoding indicates the response body could not be decoded into the
	// declared response type.
	KindDecoding
	// KindTransport indicates an underlying transport failure (DNS,
	// connection refusal, per-attempt timeout).
	KindTransport
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindInvalidResponse:
		return "invalid_response"
	case KindHTTP:
		return "http"
	case KindDecoding:
		return "decoding"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is a structured pipeline error with classification.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// StatusCode is the HTTP status code (0 for non-HTTP errors).
	StatusCode int
	// Message describes the error.
	Message string
	// Body is the raw response body for HTTP errors (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("networkkit: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("networkkit: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidURL creates an invalid-URL error.
func InvalidURL(err error) *Error {
	return &Error{
		Kind:    KindInvalidURL,
		Message: err.Error(),
		Err:     err,
	}
}

// InvalidResponse creates an invalid-response error.
func InvalidResponse(msg string) *Error {
	return &Error{
		Kind:    KindInvalidResponse,
		Message: msg,
	}
}

// HTTP creates an HTTP status error. The body is kept so callers can inspect
// server-provided error payloads.
func HTTP(statusCode int, body []byte) *Error {
	return &Error{
		Kind:       KindHTTP,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// Decoding creates a decoding error.
func Decoding(err error) *Error {
	return &Error{
		Kind:    KindDecoding,
		Message: err.Error(),
		Err:     err,
	}
}

// Transport creates a transport error.
func Transport(err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// IsInvalidURL checks if an error is an invalid-URL error.
func IsInvalidURL(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == KindInvalidURL
}

// IsInvalidResponse checks if an error is an invalid-response error.
func IsInvalidResponse(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == KindInvalidResponse
}

// IsHTTP checks if an error is an HTTP status error.
func IsHTTP(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == KindHTTP
}

// IsDecoding checks if an error is a decoding error.
func IsDecoding(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == KindDecoding
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == KindTransport
}

// StatusCode extracts the HTTP status code from an error, or 0 if the error
// is not an HTTP status error.
func StatusCode(err error) int {
	var e *Error
	if stderrors.As(err, &e) && e.Kind == KindHTTP {
		return e.StatusCode
	}
	return 0
}
