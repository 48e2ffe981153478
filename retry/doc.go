// Package retry implements the retry engine driving the networkkit request
// pipeline: a delay strategy (constant, linear, exponential, or custom), a
// policy pairing a strategy with a retry cap and a retryable status-code set,
// and a generic engine that re-runs an attempt function until it succeeds,
// exhausts the cap, or fails non-retryably.
//
//	policy := retry.DefaultPolicy()
//	resp, err := retry.Do(ctx, policy, func(ctx context.Context) (*transport.Response, error) {
//	    return sendOnce(ctx)
//	})
//
// Attempts are strictly sequential; the engine never runs speculative
// concurrent retries. Context cancellation short-circuits the loop between
// attempts and during the inter-retry wait.
package retry
