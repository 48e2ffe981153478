package retry

import (
	"time"

	"github.com/megastudymobile/networkkit/errors"
)

// Default policy values.
const (
	DefaultMaxRetryCount   = 3
	DefaultExponentialBase = 2 * time.Second
)

// DefaultRetryableStatusCodes returns the status codes retried by default.
func DefaultRetryableStatusCodes() []int {
	return []int{408, 429, 500, 502, 503, 504}
}

// Policy decides whether and when a failed attempt is retried. A Policy is
// stateless: it is evaluated fresh on each failure with the current attempt
// counter, and is safe for concurrent use.
type Policy struct {
	// Strategy computes the delay before each retry.
	Strategy Strategy
	// MaxRetryCount is the maximum number of retries after the first attempt.
	MaxRetryCount int
	// RetryableStatusCodes lists the HTTP status codes eligible for retry.
	RetryableStatusCodes []int
	// OnRetry, if set, is called before each retry wait.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// DefaultPolicy returns the default retry policy: 3 retries, exponential
// backoff with a 2s base, retrying {408, 429, 500, 502, 503, 504}.
func DefaultPolicy() *Policy {
	return &Policy{
		Strategy:             Exponential(DefaultExponentialBase),
		MaxRetryCount:        DefaultMaxRetryCount,
		RetryableStatusCodes: DefaultRetryableStatusCodes(),
	}
}

// NewPolicy creates a policy with the given strategy and retry cap, retrying
// the default status-code set.
func NewPolicy(strategy Strategy, maxRetryCount int) *Policy {
	return &Policy{
		Strategy:             strategy,
		MaxRetryCount:        maxRetryCount,
		RetryableStatusCodes: DefaultRetryableStatusCodes(),
	}
}

// ShouldRetry reports whether err is eligible for retry under this policy.
// Transport errors are always retryable; HTTP errors are retryable iff their
// status code is in the retryable set; every other error kind (invalid URL,
// invalid response, decoding, adapter/interceptor failures) is terminal.
func (p *Policy) ShouldRetry(err error) bool {
	if errors.IsTransport(err) {
		return true
	}
	if errors.IsHTTP(err) {
		return p.retryableStatus(errors.StatusCode(err))
	}
	return false
}

// Delay returns the wait before retrying the given 0-based attempt.
func (p *Policy) Delay(attempt int) time.Duration {
	if p.Strategy == nil {
		return 0
	}
	return p.Strategy.Delay(attempt)
}

func (p *Policy) retryableStatus(code int) bool {
	for _, c := range p.RetryableStatusCodes {
		if c == code {
			return true
		}
	}
	return false
}
