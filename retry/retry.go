package retry

import (
	"context"
	"time"
)

// Do executes fn and, on retryable failure, re-executes it according to the
// policy: at most policy.MaxRetryCount retries after the initial attempt,
// waiting policy.Delay(attempt) between attempts. A nil policy runs fn
// exactly once.
//
// Attempts are sequential. On exhaustion or a non-retryable failure the
// error from the last attempt is returned unchanged. Context cancellation
// aborts the loop immediately, including mid-wait, and returns the context
// error.
func Do[T any](ctx context.Context, policy *Policy, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	if policy == nil {
		return fn(ctx)
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		// Caller cancellation is terminal, not a retryable transport failure.
		if ctx.Err() != nil {
			return zero, lastErr
		}

		if attempt >= policy.MaxRetryCount || !policy.ShouldRetry(err) {
			return zero, lastErr
		}

		delay := policy.Delay(attempt)
		if policy.OnRetry != nil {
			policy.OnRetry(attempt, err, delay)
		}

		if err := wait(ctx, delay); err != nil {
			return zero, err
		}
	}
}

// wait blocks for d or until the context is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
