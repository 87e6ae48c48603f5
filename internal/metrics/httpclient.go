package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/destars/debox-chat-go/debox"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	upstreamRequestsMetric      = "upstream.requests"
	upstreamDurationMetric      = "upstream.duration"
	upstreamErrorsMetric        = "upstream.errors"
	circuitBreakerStateMetric   = "upstream.circuit_breaker.state"
	circuitBreakerChangesMetric = "upstream.circuit_breaker.state_changes"
)

var _ debox.RequestRecorder = (*HTTPClientCollector)(nil)

// HTTPClientCollector records outbound calls to DeBox and to the chat model.
// Only the chat model sits behind a circuit breaker.
type HTTPClientCollector struct {
	requests       metric.Int64Counter
	duration       metric.Float64Histogram
	errors         metric.Int64Counter
	breakerState   metric.Int64Gauge
	breakerChanges metric.Int64Counter
}

func NewHTTPClientCollector(meter metric.Meter) (*HTTPClientCollector, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("noop")
	}

	var (
		c   HTTPClientCollector
		err error
	)
	if c.requests, err = meter.Int64Counter(upstreamRequestsMetric,
		metric.WithDescription("Outbound API requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, err
	}
	if c.duration, err = meter.Float64Histogram(upstreamDurationMetric,
		metric.WithDescription("Outbound API request duration"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if c.errors, err = meter.Int64Counter(upstreamErrorsMetric,
		metric.WithDescription("Outbound API requests that failed"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, err
	}
	if c.breakerState, err = meter.Int64Gauge(circuitBreakerStateMetric,
		metric.WithDescription("Chat model circuit breaker state (0=closed, 1=open, 2=half-open)"),
		metric.WithUnit("{state}"),
	); err != nil {
		return nil, err
	}
	if c.breakerChanges, err = meter.Int64Counter(circuitBreakerChangesMetric,
		metric.WithDescription("Chat model circuit breaker transitions"),
		metric.WithUnit("{change}"),
	); err != nil {
		return nil, err
	}

	return &c, nil
}

// RecordRequest records one outbound request. statusCode is 0 when no
// response arrived.
func (c *HTTPClientCollector) RecordRequest(
	ctx context.Context,
	method string,
	host string,
	statusCode int,
	duration time.Duration,
	err error,
) {
	attrs := metric.WithAttributes(
		attribute.String("upstream.method", method),
		attribute.String("upstream.host", host),
		attribute.Int("upstream.status_code", statusCode),
		attribute.String("upstream.status_class", statusClass(statusCode)),
	)

	c.requests.Add(ctx, 1, attrs)
	c.duration.Record(ctx, duration.Seconds(), attrs)

	if err != nil {
		c.errors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("upstream.host", host),
			attribute.String("error.type", getErrorType(err)),
		))
	}
}

func (c *HTTPClientCollector) RecordCircuitBreakerState(ctx context.Context, host string, state string) {
	c.breakerState.Record(ctx, circuitBreakerStateToInt(state), metric.WithAttributes(
		attribute.String("upstream.host", host),
		attribute.String("circuit_breaker.state", state),
	))
}

func (c *HTTPClientCollector) RecordCircuitBreakerStateChange(ctx context.Context, host string, fromState string, toState string) {
	c.breakerChanges.Add(ctx, 1, metric.WithAttributes(
		attribute.String("upstream.host", host),
		attribute.String("circuit_breaker.from_state", fromState),
		attribute.String("circuit_breaker.to_state", toState),
	))
}

func statusClass(statusCode int) string {
	if statusCode < 100 || statusCode > 599 {
		return "none"
	}
	return fmt.Sprintf("%dxx", statusCode/100)
}

func circuitBreakerStateToInt(state string) int64 {
	switch state {
	case gobreaker.StateClosed.String():
		return 0
	case gobreaker.StateOpen.String():
		return 1
	case gobreaker.StateHalfOpen.String():
		return 2
	default:
		return -1
	}
}

func getErrorType(err error) string {
	if err == nil {
		return "none"
	}

	if _, ok := debox.IsAPIError(err); ok {
		return "invalid_status"
	}

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_breaker_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "unknown"
	}
}
