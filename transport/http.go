package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/megastudymobile/networkkit/errors"
)

// HTTPConfig configures the default net/http transport.
type HTTPConfig struct {
	// TLS configures TLS settings for the underlying transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// HTTP is the default Transport backed by net/http. Connection pooling and
// keep-alive are delegated to the underlying *http.Transport.
type HTTP struct {
	client *http.Client
}

// compile-time assertion
var _ Transport = (*HTTP)(nil)

// NewHTTP creates the default transport with the given configuration.
func NewHTTP(cfg HTTPConfig) (*HTTP, error) {
	base := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			base.TLSClientConfig = tlsCfg
		}
	}

	return &HTTP{client: &http.Client{Transport: base}}, nil
}

// Default returns a transport with default settings.
func Default() *HTTP {
	t, _ := NewHTTP(HTTPConfig{})
	return t
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (t *HTTP) Unwrap() *http.Client {
	return t.client
}

// Send performs one HTTP round trip. The request's Timeout bounds this
// attempt only; an elapsed per-attempt deadline surfaces as a retryable
// transport error, while cancellation of the caller's context propagates
// unchanged so the retry loop can short-circuit.
func (t *HTTP) Send(ctx context.Context, req *Request) (*Response, error) {
	sendCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(sendCtx, req.Method, req.URL, body)
	if err != nil {
		return nil, errors.InvalidURL(err)
	}
	if req.Headers != nil {
		httpReq.Header = req.Headers.Clone()
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Transport(err)
	}
	if resp == nil {
		return nil, errors.InvalidResponse("transport returned no response")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Transport(fmt.Errorf("read response body: %w", err))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header.Clone(),
		Body:       data,
	}, nil
}
