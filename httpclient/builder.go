package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/megastudymobile/networkkit/errors"
	"github.com/megastudymobile/networkkit/transport"
)

// buildRequest merges a spec with the configuration into a wire request.
// Pure transform: no I/O, no side effects. A fresh request is built per
// attempt so adapters never see another attempt's mutations.
func buildRequest(spec Spec, cfg *Config) (*transport.Request, error) {
	def := spec.Definition()

	rawURL := resolveURL(cfg.BaseURL, def.Path)
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.InvalidURL(err)
	}
	if !u.IsAbs() {
		return nil, errors.InvalidURL(fmt.Errorf("%q is not an absolute URL", rawURL))
	}

	if len(def.Query) > 0 {
		u.RawQuery = appendQuery(u.RawQuery, def.Query)
	}

	// Common headers first, request-specific second: on collision the
	// spec's value wins.
	headers := make(http.Header, len(cfg.Headers)+len(def.Headers))
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}
	for k, v := range def.Headers {
		headers.Set(k, v)
	}

	return &transport.Request{
		URL:     u.String(),
		Method:  def.Method,
		Headers: headers,
		Body:    def.Body,
		Timeout: cfg.Timeout,
	}, nil
}

// resolveURL joins the base address and request path.
func resolveURL(base, path string) string {
	if base == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// appendQuery encodes parameters onto an existing query string in spec
// order. url.Values.Encode sorts by key, so the encoding is done by hand.
func appendQuery(existing string, params []QueryParam) string {
	var b strings.Builder
	b.WriteString(existing)
	for _, p := range params {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
