package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/textproto"

	"github.com/megastudymobile/networkkit/errors"
)

// Execute runs the pipeline for the spec and decodes the response body into
// the declared type T. Decoding uses the customization captured at client
// construction; a body that does not match T fails with a decoding error,
// which is never retried.
//
// Go methods cannot take type parameters, so typed execution is a package
// function over the client.
func Execute[T any](ctx context.Context, c *Client, spec Spec) (T, error) {
	var zero T
	resp, err := c.Do(ctx, spec)
	if err != nil {
		return zero, err
	}
	return decodeBody[T](c, resp.Body)
}

// Get performs a typed GET request.
func Get[T any](ctx context.Context, c *Client, path string, opts ...EndpointOption) (T, error) {
	return Execute[T](ctx, c, NewEndpoint(http.MethodGet, path, opts...))
}

// Post performs a typed POST request with a JSON-encoded body.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...EndpointOption) (T, error) {
	return withJSONBody[T](ctx, c, http.MethodPost, path, body, opts)
}

// Put performs a typed PUT request with a JSON-encoded body.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...EndpointOption) (T, error) {
	return withJSONBody[T](ctx, c, http.MethodPut, path, body, opts)
}

// Patch performs a typed PATCH request with a JSON-encoded body.
func Patch[T any](ctx context.Context, c *Client, path string, body any, opts ...EndpointOption) (T, error) {
	return withJSONBody[T](ctx, c, http.MethodPatch, path, body, opts)
}

// Delete performs a typed DELETE request.
func Delete[T any](ctx context.Context, c *Client, path string, opts ...EndpointOption) (T, error) {
	return Execute[T](ctx, c, NewEndpoint(http.MethodDelete, path, opts...))
}

func withJSONBody[T any](ctx context.Context, c *Client, method, path string, body any, opts []EndpointOption) (T, error) {
	var zero T
	e := NewEndpoint(method, path, opts...)
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, errors.Decoding(fmt.Errorf("encode request body: %w", err))
		}
		e.Body = data
		// Default content type, kept only when the caller set none.
		if !hasContentType(e.Headers) {
			WithHeader("Content-Type", "application/json")(&e)
		}
	}
	return Execute[T](ctx, c, e)
}

// hasContentType checks the definition headers case-insensitively; the
// builder canonicalizes keys only later, when merging into http.Header.
func hasContentType(headers map[string]string) bool {
	for k := range headers {
		if textproto.CanonicalMIMEHeaderKey(k) == "Content-Type" {
			return true
		}
	}
	return false
}

func decodeBody[T any](c *Client, body []byte) (T, error) {
	var v T
	if len(body) == 0 {
		return v, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	if c.decode != nil {
		c.decode(dec)
	}
	if err := dec.Decode(&v); err != nil {
		return v, errors.Decoding(err)
	}
	return v, nil
}
