// Package orderservice notifies the order service over HTTP when a payment is confirmed.
package orderservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alurafood/payments/internal/infra/config"
	"github.com/alurafood/payments/internal/port/outbound"
	"github.com/alurafood/payments/internal/utils/metrics"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	breakerName  = "order-service"
	transportTag = "http"
	tracerName   = "github.com/alurafood/payments/internal/adapter/outbound/orderservice"
)

// ErrOrderServiceUnavailable is returned while the circuit breaker rejects calls.
var ErrOrderServiceUnavailable = errors.New("order service unavailable")

// httpNotifier implements outbound.OrderNotifierPort with PUT {base}/orders/{id}/paid.
type httpNotifier struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[any]
	tracer  trace.Tracer
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewHTTPNotifier creates an order service client. m may be nil.
func NewHTTPNotifier(cfg config.OrderServiceConfig, client *http.Client, m *metrics.Metrics, logger *zap.Logger) outbound.OrderNotifierPort {
	n := &httpNotifier{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
		tracer:  otel.Tracer(tracerName),
		metrics: m,
		logger:  logger,
	}

	threshold := cfg.Breaker.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	n.breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("order service circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			if m != nil {
				m.SetBreakerState(name, int(to))
			}
		},
	})

	return n
}

func (n *httpNotifier) NotifyPaymentUpdated(ctx context.Context, orderID uint64) error {
	ctx, span := n.tracer.Start(ctx, "order-service.NotifyPaymentUpdated",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int64("order.id", int64(orderID))),
	)
	defer span.End()

	start := time.Now()
	_, err := n.breaker.Execute(func() (any, error) {
		return nil, n.markPaid(ctx, span, orderID)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %v", ErrOrderServiceUnavailable, err)
	}

	if n.metrics != nil {
		n.metrics.RecordOrderNotification(transportTag, time.Since(start), err)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (n *httpNotifier) markPaid(ctx context.Context, span trace.Span, orderID uint64) error {
	url := fmt.Sprintf("%s/orders/%d/paid", n.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return fmt.Errorf("build order service request: %w", err)
	}
	span.SetAttributes(
		attribute.String("http.url", url),
		attribute.String("http.method", http.MethodPut),
	)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify order %d: %w", orderID, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify order %d: order service returned status %s", orderID, resp.Status)
	}

	n.logger.Debug("order marked as paid", zap.Uint64("order_id", orderID))
	return nil
}

// noopNotifier is used when no order integration is configured.
type noopNotifier struct {
	logger *zap.Logger
}

// NewNoopNotifier creates a notifier that only logs.
func NewNoopNotifier(logger *zap.Logger) outbound.OrderNotifierPort {
	return &noopNotifier{logger: logger}
}

func (n *noopNotifier) NotifyPaymentUpdated(_ context.Context, orderID uint64) error {
	n.logger.Info("order service integration disabled, skipping notification", zap.Uint64("order_id", orderID))
	return nil
}

// Compile-time interface assertions.
var (
	_ outbound.OrderNotifierPort = (*httpNotifier)(nil)
	_ outbound.OrderNotifierPort = (*noopNotifier)(nil)
)
