package auth

import (
	"context"
	"encoding/base64"
	"net/url"

	"github.com/megastudymobile/networkkit/httpclient"
	"github.com/megastudymobile/networkkit/transport"
)

const defaultAPIKeyHeader = "X-API-Key"

// Bearer returns an adapter that sets a static bearer token.
func Bearer(token string) httpclient.Adapter {
	return httpclient.AdapterFunc(func(_ context.Context, req *transport.Request) (*transport.Request, error) {
		req.Headers.Set("Authorization", "Bearer "+token)
		return req, nil
	})
}

// Basic returns an adapter that sets HTTP Basic credentials.
func Basic(username, password string) httpclient.Adapter {
	cred := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return httpclient.AdapterFunc(func(_ context.Context, req *transport.Request) (*transport.Request, error) {
		req.Headers.Set("Authorization", "Basic "+cred)
		return req, nil
	})
}

// APIKey returns an adapter that sends an API key via the X-API-Key header.
func APIKey(key string) httpclient.Adapter {
	return APIKeyHeader(key, defaultAPIKeyHeader)
}

// APIKeyHeader returns an adapter that sends an API key via a custom header.
func APIKeyHeader(key, headerName string) httpclient.Adapter {
	if headerName == "" {
		headerName = defaultAPIKeyHeader
	}
	return httpclient.AdapterFunc(func(_ context.Context, req *transport.Request) (*transport.Request, error) {
		req.Headers.Set(headerName, key)
		return req, nil
	})
}

// APIKeyQuery returns an adapter that sends an API key via a query parameter.
// The key is appended to the existing query string as-is; re-encoding would
// sort the parameters the builder encoded in order.
func APIKeyQuery(key, paramName string) httpclient.Adapter {
	return httpclient.AdapterFunc(func(_ context.Context, req *transport.Request) (*transport.Request, error) {
		u, err := url.Parse(req.URL)
		if err != nil {
			return nil, err
		}
		pair := url.QueryEscape(paramName) + "=" + url.QueryEscape(key)
		if u.RawQuery == "" {
			u.RawQuery = pair
		} else {
			u.RawQuery += "&" + pair
		}
		req.URL = u.String()
		return req, nil
	})
}
