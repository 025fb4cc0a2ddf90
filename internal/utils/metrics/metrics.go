package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation results.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds all application metrics.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestsInFlight prometheus.Gauge
	HTTPRequestDuration  *prometheus.HistogramVec

	// Payment metrics
	PaymentOperationsTotal *prometheus.CounterVec

	// Order service integration metrics
	OrderNotificationsTotal   *prometheus.CounterVec
	OrderNotificationDuration *prometheus.HistogramVec
	OrderServiceBreakerState  *prometheus.GaugeVec

	// Idempotency metrics
	IdempotentReplaysTotal prometheus.Counter
}

// New creates a new Metrics instance registered with the default registry.
func New(namespace string) *Metrics {
	return NewWithRegistry(namespace, prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a new Metrics instance registered with reg.
func NewWithRegistry(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "payments"
	}
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),

		PaymentOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payment",
				Name:      "operations_total",
				Help:      "Total number of payment lifecycle operations",
			},
			[]string{"operation", "result"}, // operation: create, update, delete, confirm, ...
		),

		OrderNotificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "order_service",
				Name:      "notifications_total",
				Help:      "Total number of order service notifications",
			},
			[]string{"transport", "result"},
		),
		OrderNotificationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "order_service",
				Name:      "notification_duration_seconds",
				Help:      "Order service notification duration in seconds",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"transport"},
		),
		OrderServiceBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "order_service",
				Name:      "breaker_state",
				Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"breaker"},
		),

		IdempotentReplaysTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "idempotent_replays_total",
				Help:      "Total number of responses replayed for a repeated Idempotency-Key",
			},
		),
	}
}

// --- Convenience methods ---

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	statusStr := statusCodeToString(status)
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPaymentOperation records the outcome of a payment lifecycle operation.
func (m *Metrics) RecordPaymentOperation(operation string, err error) {
	m.PaymentOperationsTotal.WithLabelValues(operation, result(err)).Inc()
}

// RecordOrderNotification records an order service notification attempt.
func (m *Metrics) RecordOrderNotification(transport string, duration time.Duration, err error) {
	m.OrderNotificationsTotal.WithLabelValues(transport, result(err)).Inc()
	m.OrderNotificationDuration.WithLabelValues(transport).Observe(duration.Seconds())
}

// SetBreakerState records the current state of a circuit breaker.
func (m *Metrics) SetBreakerState(name string, state int) {
	m.OrderServiceBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordIdempotentReplay records a response served from the idempotency cache.
func (m *Metrics) RecordIdempotentReplay() {
	m.IdempotentReplaysTotal.Inc()
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// statusCodeToString converts an HTTP status code to a string category.
func statusCodeToString(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
