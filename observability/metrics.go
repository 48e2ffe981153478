package observability

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/megastudymobile/networkkit/transport"
)

// MetricsTransport wraps a Transport and records request metrics per
// attempt: a request counter, a duration histogram, and an in-flight
// gauge. Retried attempts count individually.
type MetricsTransport struct {
	next transport.Transport

	requestTotal    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestActive   metric.Int64UpDownCounter
}

// compile-time assertion
var _ transport.Transport = (*MetricsTransport)(nil)

// NewMetricsTransport decorates the given transport with metric recording.
// Instruments are created on the global meter provider; with no provider
// installed they are no-ops.
func NewMetricsTransport(next transport.Transport) (*MetricsTransport, error) {
	meter := otel.Meter(tracerName)

	requestTotal, err := meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Total number of request attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of request attempts in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request.duration histogram: %w", err)
	}

	requestActive, err := meter.Int64UpDownCounter("http.client.request.active",
		metric.WithDescription("Number of currently in-flight request attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request.active gauge: %w", err)
	}

	return &MetricsTransport{
		next:            next,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestActive:   requestActive,
	}, nil
}

// Send implements transport.Transport.
func (t *MetricsTransport) Send(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	t.requestActive.Add(ctx, 1)
	start := time.Now()

	resp, err := t.next.Send(ctx, req)

	duration := time.Since(start)
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	attrs := metric.WithAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("status", status),
	)
	t.requestActive.Add(ctx, -1)
	t.requestTotal.Add(ctx, 1, attrs)
	t.requestDuration.Record(ctx, duration.Seconds(), attrs)

	return resp, err
}
