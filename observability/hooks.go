package observability

import (
	"context"

	"github.com/google/uuid"

	"github.com/megastudymobile/networkkit/httpclient"
	"github.com/megastudymobile/networkkit/logger"
	"github.com/megastudymobile/networkkit/transport"
	"github.com/megastudymobile/networkkit/version"
)

// HeaderRequestID is the header used to correlate requests across services.
const HeaderRequestID = "X-Request-ID"

// LogInterceptor returns an interceptor that logs every observed response.
// Observation only; the response is never mutated.
func LogInterceptor(log *logger.Logger) httpclient.Interceptor {
	log = log.WithComponent("httpclient")
	return httpclient.InterceptorFunc(func(_ context.Context, resp *transport.Response) error {
		log.Debug("response received", logger.Fields(
			logger.FieldStatus, resp.StatusCode,
			"bytes", len(resp.Body),
		))
		return nil
	})
}

// RequestIDAdapter returns an adapter that stamps each attempt with a fresh
// request ID. A request ID already present on the wire request (set by the
// spec or an earlier adapter in a chain) is kept.
func RequestIDAdapter() httpclient.Adapter {
	return httpclient.AdapterFunc(func(_ context.Context, req *transport.Request) (*transport.Request, error) {
		if req.Headers.Get(HeaderRequestID) == "" {
			req.Headers.Set(HeaderRequestID, uuid.NewString())
		}
		return req, nil
	})
}

// UserAgentAdapter returns an adapter that sets the library's default
// User-Agent header. A User-Agent already present is kept.
func UserAgentAdapter() httpclient.Adapter {
	ua := version.UserAgent()
	return httpclient.AdapterFunc(func(_ context.Context, req *transport.Request) (*transport.Request, error) {
		if req.Headers.Get("User-Agent") == "" {
			req.Headers.Set("User-Agent", ua)
		}
		return req, nil
	})
}
