package app

import (
	"net/http"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	// Domains
	"github.com/alurafood/payments/internal/domain"
	"github.com/alurafood/payments/internal/domain/payment"

	// Inbound adapters
	ginadapter "github.com/alurafood/payments/internal/adapter/inbound/gin"

	// Ports
	"github.com/alurafood/payments/internal/port/inbound"
	"github.com/alurafood/payments/internal/port/outbound"

	// Outbound adapters
	"github.com/alurafood/payments/internal/adapter/outbound/jwtauth"
	"github.com/alurafood/payments/internal/adapter/outbound/kafka"
	"github.com/alurafood/payments/internal/adapter/outbound/memory"
	"github.com/alurafood/payments/internal/adapter/outbound/orderservice"
	"github.com/alurafood/payments/internal/adapter/outbound/postgres"

	// Infrastructure
	"github.com/alurafood/payments/internal/infra/cache"
	"github.com/alurafood/payments/internal/infra/config"
	"github.com/alurafood/payments/internal/infra/database"
	"github.com/alurafood/payments/internal/infra/httpclient"

	// Utils
	"github.com/alurafood/payments/internal/utils/logger"
	"github.com/alurafood/payments/internal/utils/metrics"
)

// Dependencies holds all injected dependencies.
type Dependencies struct {
	Config     *config.Config
	DB         *gorm.DB
	Redis      goredis.UniversalClient
	HTTPClient *http.Client
	Logger     *logger.Logger
	ZapLogger  *zap.Logger
	Registry   *prometheus.Registry
	Metrics    *metrics.Metrics

	Outbound outbound.OutboundPorts
	Inbound  inbound.InboundPorts

	Domain        *domain.Domain
	PaymentDomain payment.PaymentDomain
}

// ===== Infrastructure Providers =====

// InfraSet provides infrastructure dependencies.
var InfraSet = wire.NewSet(
	ProvideDatabase,
	ProvideRedisClient,
	ProvideHTTPClient,
	ProvideLogger,
	ProvideZapLogger,
	ProvideRegistry,
	ProvideMetrics,
)

// ProvideDatabase opens the SQL database. The memory driver needs none.
func ProvideDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		return nil, func() {}, nil
	}
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = database.Close(db) }, nil
}

// ProvideRedisClient creates a Redis client.
func ProvideRedisClient(cfg *config.Config, zapLog *zap.Logger) (goredis.UniversalClient, func()) {
	client, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		zapLog.Warn("Redis connection failed, continuing without idempotency", zap.Error(err))
		return nil, func() {}
	}
	return client, func() { _ = cache.Close(client) }
}

// ProvideLogger creates a logger instance.
func ProvideLogger(cfg *config.Config) *logger.Logger {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// ProvideZapLogger creates a zap logger instance.
func ProvideZapLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	zapLog, err := logger.NewZapLogger(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, nil, err
	}
	return zapLog, func() { _ = zapLog.Sync() }, nil
}

// ProvideHTTPClient creates a shared HTTP client with connection pooling.
func ProvideHTTPClient(cfg *config.Config) *http.Client {
	return httpclient.New(cfg.HTTPClient)
}

// ProvideRegistry creates the Prometheus registry served on /metrics.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a metrics instance.
func ProvideMetrics(cfg *config.Config, reg *prometheus.Registry) *metrics.Metrics {
	return metrics.NewWithRegistry(cfg.Metrics.Namespace, reg)
}

// ===== Outbound Providers =====

// OutboundSet provides outbound port implementations.
var OutboundSet = wire.NewSet(
	ProvidePaymentDatabase,
	ProvideOrderNotifier,
	ProvideTokenValidator,
	wire.Struct(new(outbound.OutboundPorts), "*"),
)

// ProvidePaymentDatabase selects the payment store for the configured driver.
func ProvidePaymentDatabase(cfg *config.Config, db *gorm.DB) outbound.PaymentDatabasePort {
	if cfg.Database.Driver == config.DriverMemory {
		return memory.NewPaymentStore()
	}
	return postgres.NewPaymentAdapter(db)
}

// ProvideOrderNotifier selects the order service transport.
func ProvideOrderNotifier(
	cfg *config.Config,
	client *http.Client,
	m *metrics.Metrics,
	zapLog *zap.Logger,
) (outbound.OrderNotifierPort, func()) {
	switch cfg.OrderService.Transport {
	case config.TransportKafka:
		notifier := kafka.NewNotifier(kafka.NewWriter(cfg.OrderService.Kafka), m, zapLog)
		return notifier, func() { _ = notifier.Close() }
	case config.TransportNone:
		return orderservice.NewNoopNotifier(zapLog), func() {}
	default:
		return orderservice.NewHTTPNotifier(cfg.OrderService, client, m, zapLog), func() {}
	}
}

// ProvideTokenValidator creates the bearer token validator, or nil when auth is disabled.
func ProvideTokenValidator(cfg *config.Config) outbound.TokenValidatorPort {
	if !cfg.Auth.Enabled {
		return nil
	}
	return jwtauth.NewTokenValidator(cfg.Auth)
}

// ===== Payment Domain Providers =====

// PaymentSet provides payment domain dependencies.
var PaymentSet = wire.NewSet(
	domain.NewDomain,
	ProvidePaymentDomain,
	ProvidePaymentHTTP,
	wire.Struct(new(inbound.InboundPorts), "*"),
)

// ProvidePaymentDomain exposes the payment service from the domain registry.
func ProvidePaymentDomain(d *domain.Domain) payment.PaymentDomain {
	return d.Payment
}

// ProvidePaymentHTTP creates the payment HTTP adapter.
func ProvidePaymentHTTP(domain payment.PaymentDomain, m *metrics.Metrics, zapLog *zap.Logger) inbound.PaymentHttpPort {
	return ginadapter.NewPaymentAdapter(domain, m, zapLog)
}

// AppSet combines all provider sets.
var AppSet = wire.NewSet(
	InfraSet,
	OutboundSet,
	PaymentSet,
)
