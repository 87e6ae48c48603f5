package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPServerCollector records inbound webhook and health requests.
type HTTPServerCollector struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
}

func NewHTTPServerCollector(meter metric.Meter) (*HTTPServerCollector, error) {
	requestCount, err := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Total inbound HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.server.duration",
		metric.WithDescription("Inbound HTTP request duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPServerCollector{
		requestCount:    requestCount,
		requestDuration: requestDuration,
	}, nil
}

// Middleware records every request, including those aborted by a panic that
// an outer gin.Recovery turns into a 500.
func (m *HTTPServerCollector) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		defer func() {
			statusCode := c.Writer.Status()
			if r := recover(); r != nil {
				statusCode = 500
				m.record(c, path, statusCode, time.Since(start))
				panic(r)
			}
			m.record(c, path, statusCode, time.Since(start))
		}()

		c.Next()
	}
}

func (m *HTTPServerCollector) record(c *gin.Context, path string, statusCode int, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", path),
		attribute.Int("http.status_code", statusCode),
	}

	ctx := c.Request.Context()

	m.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
