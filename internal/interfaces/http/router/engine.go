package router

import (
	"fmt"
	"net/http"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/auth"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/config"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/logger"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/dto"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// EngineDeps carries everything NewEngine wires into the gin engine
type EngineDeps struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Handlers   Handlers

	// RateLimiter is applied per client IP; nil disables rate limiting
	RateLimiter *middleware.RateLimiter
	// TracerProvider defaults to the global provider
	TracerProvider trace.TracerProvider
	// Meter records HTTP server metrics; nil disables them
	Meter metric.Meter
}

// NewEngine builds the HTTP engine.
//
// Engine-wide, in order: Recovery, RequestID, Tracing, request logging,
// security headers, CORS, body limit and rate limit. API routes then run JWT
// authentication, span enrichment, HTTP metrics and profiling labels.
func NewEngine(deps EngineDeps) (*gin.Engine, error) {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		Enabled:        cfg.Telemetry.Enabled,
		SkipPaths:      middleware.DefaultTracingConfig().SkipPaths,
		TracerProvider: deps.TracerProvider,
	}))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(cors))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if deps.RateLimiter != nil {
		engine.Use(middleware.RateLimit(deps.RateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", deps.RateLimiter.Limit()),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	httpMetrics, err := middleware.HTTPMetrics(deps.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create http metrics: %w", err)
	}

	jwtConfig := middleware.DefaultJWTConfig(deps.JWTService)
	jwtConfig.Logger = log

	// the docs carry their own guard, so their token check has no skip list
	docsAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: deps.JWTService,
		Logger:     log,
	})
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger, docsAuth),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	profiling := middleware.DefaultProfilingConfig()
	profiling.Enabled = cfg.Telemetry.ProfilingEnabled

	r := NewRouter(engine, WithAPIVersion("v1"))
	r.Use(
		middleware.JWTAuthMiddlewareWithConfig(jwtConfig),
		middleware.TracingAttributeInjector(),
		middleware.SpanErrorMarker(),
		httpMetrics,
		middleware.ProfilingWithConfig(profiling),
	)
	for _, group := range APIGroups(deps.Handlers) {
		r.Register(group)
	}
	r.Setup()

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeNotFound, "Route not found", middleware.GetRequestID(c)))
	})
	return engine, nil
}
