package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics holds the Prometheus instruments for the HTTP server.
type HTTPMetrics struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestSize     *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec
	activeRequests  prometheus.Gauge
}

// NewHTTPMetrics creates the HTTP metric instruments on a fresh registry
// that also exposes process and Go runtime collectors.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)
	constLabels := prometheus.Labels{"service": serviceName}

	return &HTTPMetrics{
		registry: registry,
		requestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_server_request_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status_code"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_server_request_duration_seconds",
			Help:        "HTTP request latency distribution in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		requestSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_server_request_size_bytes",
			Help:        "HTTP request body size distribution in bytes",
			ConstLabels: constLabels,
			Buckets:     []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
		}, []string{"method", "route"}),
		responseSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_server_response_size_bytes",
			Help:        "HTTP response body size distribution in bytes",
			ConstLabels: constLabels,
			Buckets:     []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000, 5000000},
		}, []string{"method", "route"}),
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "http_server_active_requests",
			Help:        "Number of currently active HTTP requests",
			ConstLabels: constLabels,
		}),
	}
}

// Handler returns the handler serving the /metrics endpoint.
func (m *HTTPMetrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Middleware returns a gin middleware that records the HTTP metrics.
// Routes are recorded by pattern (e.g. /api/v1/batches/:id/cost) rather
// than the raw path to keep label cardinality bounded.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestSize := c.Request.ContentLength

		m.activeRequests.Inc()
		c.Next()
		m.activeRequests.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		method := c.Request.Method

		m.requestTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		if requestSize > 0 {
			m.requestSize.WithLabelValues(method, route).Observe(float64(requestSize))
		}
		if size := c.Writer.Size(); size > 0 {
			m.responseSize.WithLabelValues(method, route).Observe(float64(size))
		}
	}
}
