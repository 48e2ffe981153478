package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/megastudymobile/networkkit/transport"
)

const tracerName = "github.com/megastudymobile/networkkit/observability"

// TracingTransport wraps a Transport and records one client span per
// attempt, so retried attempts show up as separate spans.
type TracingTransport struct {
	next   transport.Transport
	tracer trace.Tracer
}

// compile-time assertion
var _ transport.Transport = (*TracingTransport)(nil)

// NewTracingTransport decorates the given transport with tracing.
func NewTracingTransport(next transport.Transport) *TracingTransport {
	return &TracingTransport{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

// Send implements transport.Transport.
func (t *TracingTransport) Send(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	ctx, span := t.tracer.Start(ctx, req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL),
		),
	)
	defer span.End()

	resp, err := t.next.Send(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
	return resp, nil
}
