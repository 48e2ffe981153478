package transport

import (
	"context"
	"net/http"
	"time"
)

// Request is the fully resolved wire request, built fresh per attempt: an
// absolute URL, merged headers, body bytes, and the per-attempt deadline.
type Request struct {
	// URL is the absolute request URL, query string included.
	URL string
	// Method is the HTTP method.
	Method string
	// Headers is the merged header set.
	Headers http.Header
	// Body is the raw request body (nil for bodyless requests).
	Body []byte
	// Timeout bounds a single transport round trip. Zero disables the bound.
	Timeout time.Duration
}

// Clone returns a deep copy of the request. The pipeline builds a fresh
// request per attempt, so it never needs this itself; Clone is for callers
// that hold on to a request (custom transports, test doubles) and must not
// share mutable state with the pipeline.
func (r *Request) Clone() *Request {
	clone := *r
	clone.Headers = r.Headers.Clone()
	if r.Body != nil {
		clone.Body = make([]byte, len(r.Body))
		copy(clone.Body, r.Body)
	}
	return &clone
}

// Response is the raw result of one transport round trip.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers http.Header
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// Transport sends a wire request and returns the raw response. An
// implementation must be safe for concurrent use; the pipeline shares one
// Transport across all in-flight calls.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Func adapts a function to the Transport interface.
type Func func(ctx context.Context, req *Request) (*Response, error)

// Send implements Transport.
func (f Func) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
