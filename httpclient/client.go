package httpclient

import (
	"context"
	"encoding/json"
	"time"

	"github.com/megastudymobile/networkkit/errors"
	"github.com/megastudymobile/networkkit/logger"
	"github.com/megastudymobile/networkkit/retry"
	"github.com/megastudymobile/networkkit/transport"
)

// Client orchestrates the request pipeline. A Client holds no per-call
// mutable state: concurrent Do calls each own their attempt counter and wire
// request, so one Client is safely shared across goroutines.
type Client struct {
	config    Config
	transport transport.Transport
	policy    *retry.Policy
	decode    func(*json.Decoder)
	log       *logger.Logger
}

// New creates a Client from the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:    cfg,
		transport: cfg.Transport,
		policy:    cfg.Retry,
		decode:    cfg.Decode,
		log:       cfg.Logger,
	}

	if c.log != nil && c.policy != nil && c.policy.OnRetry == nil {
		// Own copy so the caller's policy value stays untouched.
		p := *c.policy
		p.OnRetry = c.logRetry
		c.policy = &p
	}

	return c, nil
}

// Do runs the full pipeline for the spec and returns the raw validated
// response. On recoverable failure the attempt is retried per the configured
// policy; on exhaustion or a non-retryable failure the last attempt's error
// is returned unchanged.
func (c *Client) Do(ctx context.Context, spec Spec) (*transport.Response, error) {
	return retry.Do(ctx, c.policy, func(ctx context.Context) (*transport.Response, error) {
		return c.attempt(ctx, spec)
	})
}

// attempt runs one pass of the pipeline: build → adapt → send → observe →
// validate. The steps are strictly sequential.
func (c *Client) attempt(ctx context.Context, spec Spec) (*transport.Response, error) {
	req, err := buildRequest(spec, &c.config)
	if err != nil {
		return nil, err
	}

	if c.config.Adapter != nil {
		req, err = c.config.Adapter.Adapt(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.config.Interceptor != nil {
		if err := c.config.Interceptor.Observe(ctx, resp); err != nil {
			return nil, err
		}
	}

	if err := validate(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// validate checks the status-code class of a transport response.
func validate(resp *transport.Response) error {
	if resp == nil {
		return errors.InvalidResponse("transport returned no response")
	}
	if !resp.IsSuccess() {
		return errors.HTTP(resp.StatusCode, resp.Body)
	}
	return nil
}

func (c *Client) logRetry(attempt int, err error, delay time.Duration) {
	c.log.Debug("retrying request", logger.Fields(
		logger.FieldAttempt, attempt,
		"delay", delay.String(),
		logger.FieldError, err.Error(),
	))
}
