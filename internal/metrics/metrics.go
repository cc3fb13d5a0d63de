// Package metrics provides Prometheus metrics collection for the food order service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// priceBuckets cover a single side dish up to a large table order, in won.
var priceBuckets = []float64{1000, 2000, 5000, 8000, 10000, 15000, 20000, 30000, 50000, 100000}

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

	// CartCommitsTotal counts add-to-cart attempts by item variant and outcome.
	CartCommitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_commits_total",
			Help: "Total number of items committed to carts",
		},
		[]string{"item_type", "status"},
	)

	// CartLinePrice observes the price of each committed line.
	CartLinePrice = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_line_price_won",
			Help:    "Price of committed cart lines in won",
			Buckets: priceBuckets,
		},
		[]string{"item_type"},
	)

	// CartTotal observes the cart total every time it is computed for a client.
	CartTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cart_total_won",
			Help:    "Cart totals returned to clients in won",
			Buckets: priceBuckets,
		},
	)

	// CustomizationOperationsTotal counts tracker mutations.
	CustomizationOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customization_operations_total",
			Help: "Total number of customization operations",
		},
		[]string{"operation", "result"},
	)

	// ActiveSessions tracks sessions currently held by the session store.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions",
			Help: "Number of live ordering sessions",
		},
	)

	// SessionStoreOperationsTotal tracks session store operations.
	SessionStoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_operations_total",
			Help: "Total number of session store operations",
		},
		[]string{"operation", "result"},
	)

	// CircuitBreakerState exposes each breaker's state (0 closed, 1 open, 2 half-open).
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
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCommit records a successful commit and the line's price.
func RecordCommit(itemType string, price int64) {
	CartCommitsTotal.WithLabelValues(itemType, "success").Inc()
	CartLinePrice.WithLabelValues(itemType).Observe(float64(price))
}

// RecordCommitFailure records a rejected commit.
func RecordCommitFailure(itemType string) {
	CartCommitsTotal.WithLabelValues(itemType, "error").Inc()
}

// RecordCartTotal observes a computed cart total.
func RecordCartTotal(total int64) {
	CartTotal.Observe(float64(total))
}

// RecordCustomization records a tracker mutation.
func RecordCustomization(operation, result string) {
	CustomizationOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordSessionStoreOperation records metrics for a session store operation.
func RecordSessionStoreOperation(operation, result string) {
	SessionStoreOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateActiveSessions sets the live session gauge.
func UpdateActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}

// RecordCircuitBreakerState publishes a breaker state transition.
func RecordCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
