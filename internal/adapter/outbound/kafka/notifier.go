// Package kafka publishes order payment events to Kafka as an alternative to the HTTP order client.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/alurafood/payments/internal/infra/config"
	"github.com/alurafood/payments/internal/port/outbound"
	"github.com/alurafood/payments/internal/utils/metrics"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// EventTypePaymentConfirmed is the type of the event published for a confirmed payment.
	EventTypePaymentConfirmed = "payment.confirmed"

	transportTag = "kafka"
	tracerName   = "github.com/alurafood/payments/internal/adapter/outbound/kafka"
)

// PaymentConfirmedEvent is the message body consumed by the order service.
type PaymentConfirmedEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OrderID    uint64    `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MessageWriter is the subset of *kafka.Writer the notifier needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier implements outbound.OrderNotifierPort by producing PaymentConfirmedEvent messages.
type Notifier struct {
	writer  MessageWriter
	tracer  trace.Tracer
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewWriter creates a Kafka writer for the configured topic.
func NewWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// NewNotifier creates a Kafka-backed order notifier. m may be nil.
func NewNotifier(writer MessageWriter, m *metrics.Metrics, logger *zap.Logger) *Notifier {
	return &Notifier{
		writer:  writer,
		tracer:  otel.Tracer(tracerName),
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// NotifyPaymentUpdated publishes a payment.confirmed event keyed by order ID.
func (n *Notifier) NotifyPaymentUpdated(ctx context.Context, orderID uint64) error {
	ctx, span := n.tracer.Start(ctx, "kafka.PublishPaymentConfirmed",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attribute.Int64("order.id", int64(orderID))),
	)
	defer span.End()

	start := time.Now()
	err := n.publish(ctx, orderID)
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

func (n *Notifier) publish(ctx context.Context, orderID uint64) error {
	event := PaymentConfirmedEvent{
		EventID:    uuid.NewString(),
		Type:       EventTypePaymentConfirmed,
		OrderID:    orderID,
		OccurredAt: n.now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal payment confirmed event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(orderID, 10)),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypePaymentConfirmed)},
		},
	}
	carrier := HeaderCarrier(msg.Headers)
	otel.GetTextMapPropagator().Inject(ctx, &carrier)
	msg.Headers = carrier

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish payment confirmed event for order %d: %w", orderID, err)
	}

	n.logger.Debug("payment confirmed event published",
		zap.Uint64("order_id", orderID),
		zap.String("event_id", event.EventID),
	)
	return nil
}

// Close closes the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}

// HeaderCarrier adapts Kafka message headers to a propagation.TextMapCarrier.
type HeaderCarrier []kafka.Header

func (c *HeaderCarrier) Get(key string) string {
	for _, h := range *c {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *HeaderCarrier) Set(key, value string) {
	for i, h := range *c {
		if h.Key == key {
			(*c)[i].Value = []byte(value)
			return
		}
	}
	*c = append(*c, kafka.Header{Key: key, Value: []byte(value)})
}

func (c *HeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(*c))
	for _, h := range *c {
		keys = append(keys, h.Key)
	}
	return keys
}

// Compile-time interface assertion.
var _ outbound.OrderNotifierPort = (*Notifier)(nil)
