package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestServerCollector(t *testing.T) (*HTTPServerCollector, *metric.ManualReader) {
	t.Helper()

	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))

	collector, err := NewHTTPServerCollector(provider.Meter("test"))
	require.NoError(t, err)

	return collector, reader
}

func collectServerRequests(t *testing.T, reader *metric.ManualReader) []metricdata.DataPoint[int64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))
	if len(rm.ScopeMetrics) == 0 {
		return nil
	}

	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name == "http.server.requests" {
			return m.Data.(metricdata.Sum[int64]).DataPoints
		}
	}
	return nil
}

func attrValue(t *testing.T, set attribute.Set, key string) attribute.Value {
	t.Helper()

	v, ok := set.Value(attribute.Key(key))
	require.True(t, ok, "attribute %s missing", key)
	return v
}

func TestNewHTTPServerCollector(t *testing.T) {
	collector, _ := newTestServerCollector(t)

	assert.NotNil(t, collector.requestCount)
	assert.NotNil(t, collector.requestDuration)
}

func TestHTTPServerCollector_Middleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		route          string
		handler        gin.HandlerFunc
		expectedStatus int
	}{
		{
			name:   "echo webhook accepted",
			method: http.MethodPost,
			path:   "/api/destars",
			route:  "/api/destars",
			handler: func(c *gin.Context) {
				c.Status(http.StatusCreated)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "relay webhook rejected",
			method: http.MethodPost,
			path:   "/v1/webhook",
			route:  "/v1/webhook",
			handler: func(c *gin.Context) {
				c.Status(http.StatusForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "health check",
			method: http.MethodGet,
			path:   "/healthz",
			route:  "/healthz",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "server is running"})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "route template is recorded instead of the path",
			method: http.MethodGet,
			path:   "/debug/users/u1",
			route:  "/debug/users/:id",
			handler: func(c *gin.Context) {
				c.Status(http.StatusOK)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector, reader := newTestServerCollector(t)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(collector.Middleware())
			router.Handle(tt.method, tt.route, tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}")))

			assert.Equal(t, tt.expectedStatus, w.Code)

			points := collectServerRequests(t, reader)
			require.Len(t, points, 1)
			assert.Equal(t, int64(1), points[0].Value)
			assert.Equal(t, tt.method, attrValue(t, points[0].Attributes, "http.method").AsString())
			assert.Equal(t, tt.route, attrValue(t, points[0].Attributes, "http.route").AsString())
			assert.Equal(t, int64(tt.expectedStatus), attrValue(t, points[0].Attributes, "http.status_code").AsInt64())
		})
	}
}

func TestHTTPServerCollector_Middleware_UnknownRoute(t *testing.T) {
	collector, reader := newTestServerCollector(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(collector.Middleware())
	router.NoRoute(func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/undefined/path", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	points := collectServerRequests(t, reader)
	require.Len(t, points, 1)
	assert.Equal(t, "/undefined/path", attrValue(t, points[0].Attributes, "http.route").AsString())
}

func TestHTTPServerCollector_Middleware_Panic(t *testing.T) {
	collector, reader := newTestServerCollector(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(collector.Middleware())
	router.POST("/v1/webhook", func(c *gin.Context) {
		panic("upstream exploded")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/webhook", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	points := collectServerRequests(t, reader)
	require.Len(t, points, 1)
	assert.Equal(t, int64(http.StatusInternalServerError), attrValue(t, points[0].Attributes, "http.status_code").AsInt64())
}

func TestHTTPServerCollector_Middleware_CountsPerStatus(t *testing.T) {
	collector, reader := newTestServerCollector(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(collector.Middleware())
	router.POST("/v1/webhook", func(c *gin.Context) {
		if c.GetHeader("X-API-KEY") != "secret" {
			c.Status(http.StatusForbidden)
			return
		}
		c.Status(http.StatusOK)
	})

	keys := []string{"secret", "secret", "wrong"}
	for _, key := range keys {
		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", nil)
		req.Header.Set("X-API-KEY", key)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	points := collectServerRequests(t, reader)
	assert.Len(t, points, 2)

	counts := map[int64]int64{}
	for _, dp := range points {
		counts[attrValue(t, dp.Attributes, "http.status_code").AsInt64()] += dp.Value
	}
	assert.Equal(t, map[int64]int64{200: 2, 403: 1}, counts)
}
