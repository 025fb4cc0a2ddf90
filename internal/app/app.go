package app

import (
	"fmt"
	"net/http"

	_ "github.com/alurafood/payments/cmd/server/docs" // swagger docs
	ginadapter "github.com/alurafood/payments/internal/adapter/inbound/gin"
	"github.com/alurafood/payments/internal/infra/config"
	"github.com/alurafood/payments/internal/model"
	"github.com/alurafood/payments/internal/utils/logger"
	"github.com/alurafood/payments/internal/utils/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

// Version is set at build time.
var Version = "dev"

// App represents the application.
type App struct {
	config    *config.Config
	deps      *Dependencies
	cleanup   func()
	router    *gin.Engine
	logger    *logger.Logger
	zapLogger *zap.Logger
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	deps, cleanup, err := InitializeDependencies(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize dependencies: %w", err)
	}

	app := &App{
		config:    cfg,
		deps:      deps,
		cleanup:   cleanup,
		logger:    deps.Logger,
		zapLogger: deps.ZapLogger,
	}

	app.router = app.setupRouter()
	app.registerRoutes()

	app.zapLogger.Info("application initialized",
		zap.String("version", Version),
		zap.String("database", cfg.Database.Driver),
		zap.String("order_transport", cfg.OrderService.Transport),
		zap.Bool("auth", cfg.Auth.Enabled),
		zap.Bool("idempotency", cfg.Idempotency.Enabled && deps.Redis != nil),
	)

	return app, nil
}

// setupRouter creates and configures the Gin router.
func (a *App) setupRouter() *gin.Engine {
	if a.config.Server.Mode != "" {
		gin.SetMode(a.config.Server.Mode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(a.logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Tracing())
	r.Use(middleware.Logging(a.logger))
	r.Use(middleware.Metrics(a.deps.Metrics))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Version: Version})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.deps.Registry, promhttp.HandlerOpts{})))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	return r
}

// registerRoutes registers the versioned API.
func (a *App) registerRoutes() {
	v1 := a.router.Group("/api/v1")

	if a.config.Idempotency.Enabled {
		v1.Use(middleware.Idempotency(a.deps.Redis, middleware.IdempotencyConfig{
			TTL:      a.config.Idempotency.TTL,
			OnReplay: a.deps.Metrics.RecordIdempotentReplay,
		}))
	}

	var admin []gin.HandlerFunc
	if tokens := a.deps.Outbound.Tokens; tokens != nil {
		admin = append(admin,
			middleware.RequireAuth(tokens),
			middleware.RequireRole(a.config.Auth.AdminRole),
		)
	}

	ginadapter.RegisterPaymentRoutes(v1, a.deps.Inbound.PaymentHTTP, admin...)
}

// Router returns the HTTP router.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Logger returns the application's structured logger.
func (a *App) Logger() *zap.Logger {
	return a.zapLogger
}

// Stop releases every resource acquired during initialization.
func (a *App) Stop() {
	a.zapLogger.Info("stopping application")
	if a.cleanup != nil {
		a.cleanup()
	}
}
