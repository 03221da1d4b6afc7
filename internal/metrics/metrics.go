// Package metrics provides Prometheus metrics collection for the point-of-sale service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartOperationsTotal counts register cart operations by operation and result.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation", "result"},
	)

	// CartLines tracks the number of lines in the cart.
	CartLines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pos_cart_lines",
			Help: "Current number of cart lines",
		},
	)

	// CartSubtotal tracks the current cart subtotal.
	CartSubtotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pos_cart_subtotal",
			Help: "Current cart subtotal in currency units",
		},
	)

	// CheckoutTransitionsTotal counts checkout state transitions.
	CheckoutTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_checkout_transitions_total",
			Help: "Total number of checkout state transitions",
		},
		[]string{"from", "to"},
	)

	// CheckoutProcessingDuration tracks how long checkouts stay in processing.
	CheckoutProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pos_checkout_processing_duration_seconds",
			Help:    "Time between confirm and payment completion",
			Buckets: []float64{0.25, 0.5, 1, 1.5, 2, 3, 5, 10},
		},
	)

	// AuditWritesTotal counts audit trail writes by result.
	AuditWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_audit_writes_total",
			Help: "Total number of audit trail writes",
		},
		[]string{"result"},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartOperation records a cart operation outcome.
func RecordCartOperation(operation, result string) {
	CartOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCartMetrics sets the cart gauges.
func UpdateCartMetrics(lines int, subtotal float64) {
	CartLines.Set(float64(lines))
	CartSubtotal.Set(subtotal)
}

// RecordCheckoutTransition records a checkout state change.
func RecordCheckoutTransition(from, to string) {
	CheckoutTransitionsTotal.WithLabelValues(from, to).Inc()
}

// RecordCheckoutProcessing records the processing time of a completed checkout.
func RecordCheckoutProcessing(d time.Duration) {
	CheckoutProcessingDuration.Observe(d.Seconds())
}

// RecordAuditWrite records an audit trail write outcome.
func RecordAuditWrite(result string) {
	AuditWritesTotal.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState records the numeric state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
