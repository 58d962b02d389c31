package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	debtapp "github.com/felipesbcabral/desafio-pc-sub000/internal/application/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/auth"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/cache"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/config"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/event"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/logger"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/persistence"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/scheduler"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/storage"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/telemetry"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/handler"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/middleware"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/felipesbcabral/desafio-pc-sub000/docs"
)

//	@title			Debt Titles API
//	@version		1.0
//	@description	Debt titles, installments and debtors with interest and penalty accrual computed at a reference date.

//	@contact.name	API Support
//	@contact.url	https://github.com/felipesbcabral/desafio-pc-sub000

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output}
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, cfg.Telemetry, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	// rebuild the logger so entries are also exported over OTLP
	log := bootLog
	if tel.Logs.IsEnabled() {
		otelCore := telemetry.NewZapOTELCore(tel.Logs, cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Telemetry.LogsLevel))
		if log, err = logger.New(logCfg, otelCore); err != nil {
			bootLog.Fatal("Failed to initialize logger", zap.Error(err))
		}
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting debt titles API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	dbOpts := []persistence.Option{
		persistence.WithLogger(logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
			logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))),
	}
	if cfg.Telemetry.DBTraceEnabled {
		dbOpts = append(dbOpts, persistence.WithPlugin(telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:          true,
			SlowQueryThresh:  cfg.Telemetry.DBSlowQueryThresh,
			DBName:           cfg.Database.DBName,
			IncludeQueryVars: !cfg.App.IsProduction(),
		}, log)))
	}
	db, err := persistence.NewDatabase(&cfg.Database, dbOpts...)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	titleRepo := persistence.NewGormTitleRepository(db.DB)
	debtorRepo := persistence.NewGormDebtorRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)

	idempotency := cache.NewIdempotencyStore(ctx, cfg.Redis, log)

	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(event.NewIdempotentHandler(debtapp.NewPaymentAuditHandler(auditRepo, log), idempotency, log))
	if err := bus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	accrualMetrics, err := telemetry.NewAccrualMetrics(tel.Meter.Meter("debt-titles/accrual"))
	if err != nil {
		log.Fatal("Failed to create accrual metrics", zap.Error(err))
	}

	inputPeriod, err := debt.ParseRatePeriod(cfg.Accrual.DefaultInputPeriod)
	if err != nil {
		log.Fatal("Invalid accrual input period", zap.Error(err))
	}
	location := cfg.Accrual.Location()

	titleService := debtapp.NewTitleService(titleRepo, debtorRepo, auditRepo,
		debtapp.WithEventPublisher(bus),
		debtapp.WithIdempotencyStore(idempotency),
		debtapp.WithLogger(log),
		debtapp.WithMetrics(accrualMetrics),
		debtapp.WithLocation(location),
		debtapp.WithDefaultRatePeriod(inputPeriod),
	)
	debtorService := debtapp.NewDebtorService(debtorRepo, titleRepo, log)

	var exportStorage debtapp.ExportStorage
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ObjectStorage(ctx, cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to create export storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			log.Fatal("Export bucket is not available", zap.String("bucket", s3Storage.Bucket()), zap.Error(err))
		}
		exportStorage = s3Storage
	} else {
		log.Info("Export storage disabled, CSV exports are streamed")
	}
	exportService := debtapp.NewExportService(titleService, exportStorage, cfg.Storage.PresignExpiration, log)

	jwtService, err := auth.NewJWTService(cfg.JWT)
	if err != nil {
		log.Fatal("Failed to create JWT service", zap.Error(err))
	}
	authService := debtapp.NewAuthService(cfg.Admin, jwtService, log)

	sweep, err := scheduler.NewOverdueSweepScheduler(titleService, accrualMetrics, log, scheduler.OverdueSweepConfig{
		Enabled:    cfg.Scheduler.Enabled,
		SweepHour:  cfg.Scheduler.SweepHour,
		JobTimeout: cfg.Scheduler.JobTimeout,
		Location:   location,
	})
	if err != nil {
		log.Fatal("Failed to create overdue sweep", zap.Error(err))
	}
	if err := sweep.Start(ctx); err != nil {
		log.Fatal("Failed to start overdue sweep", zap.Error(err))
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer limiter.Stop()
	}

	engine, err := router.NewEngine(router.EngineDeps{
		Config:      cfg,
		Logger:      log,
		JWTService:  jwtService,
		RateLimiter: limiter,
		Meter:       tel.Meter.Meter("debt-titles/http"),
		Handlers: router.Handlers{
			Health:    handler.NewHealthHandler(db, telemetry.ServiceVersion),
			Auth:      handler.NewAuthHandler(authService),
			Debtor:    handler.NewDebtorHandler(debtorService),
			Title:     handler.NewTitleHandler(titleService),
			Export:    handler.NewExportHandler(exportService),
			Dashboard: handler.NewDashboardHandler(titleService),
		},
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           engine,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// stop taking requests first, then drain what they feed
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := sweep.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop overdue sweep", zap.Error(err))
	}
	if err := bus.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop event bus", zap.Error(err))
	}
	if err := idempotency.Close(); err != nil {
		log.Error("Failed to close idempotency store", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		log.Error("Telemetry shutdown failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
