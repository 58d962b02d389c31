package telemetry

import (
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const queryStartKey = "telemetry:query_start"

// DBTracingConfig holds database tracing configuration
type DBTracingConfig struct {
	Enabled         bool
	SlowQueryThresh time.Duration
	DBName          string

	// IncludeQueryVars puts bound values into db.statement; development only
	IncludeQueryVars bool

	// TracerProvider defaults to the global provider
	TracerProvider trace.TracerProvider
}

// DefaultDBTracingConfig returns the default configuration
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		SlowQueryThresh: 200 * time.Millisecond,
		DBName:          "debt_titles",
	}
}

// DBTracingPlugin is a gorm.Plugin that installs otelgorm and annotates its
// spans with the table, affected rows, errors and slow-query markers.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewDBTracingPlugin creates the plugin
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = DefaultDBTracingConfig().SlowQueryThresh
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DBTracingPlugin{config: cfg, logger: logger, now: time.Now}
}

// Name implements gorm.Plugin
func (p *DBTracingPlugin) Name() string {
	return "telemetry:db_tracing"
}

// Initialize implements gorm.Plugin. It is a no-op when tracing is disabled.
func (p *DBTracingPlugin) Initialize(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBName)}
	if !p.config.IncludeQueryVars {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if p.config.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(p.config.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	// after hooks run ahead of otelgorm's, which ends the span
	cb := db.Callback()
	registrations := []func() error{
		func() error { return cb.Create().Before("gorm:create").Register("telemetry:before_create", p.before) },
		func() error { return cb.Query().Before("gorm:query").Register("telemetry:before_query", p.before) },
		func() error { return cb.Update().Before("gorm:update").Register("telemetry:before_update", p.before) },
		func() error { return cb.Delete().Before("gorm:delete").Register("telemetry:before_delete", p.before) },
		func() error { return cb.Row().Before("gorm:row").Register("telemetry:before_row", p.before) },
		func() error { return cb.Raw().Before("gorm:raw").Register("telemetry:before_raw", p.before) },
		func() error {
			return cb.Create().After("gorm:create").Before("otel:after:create").Register("telemetry:after_create", p.after)
		},
		func() error {
			return cb.Query().After("gorm:query").Before("otel:after:query").Register("telemetry:after_query", p.after)
		},
		func() error {
			return cb.Update().After("gorm:update").Before("otel:after:update").Register("telemetry:after_update", p.after)
		},
		func() error {
			return cb.Delete().After("gorm:delete").Before("otel:after:delete").Register("telemetry:after_delete", p.after)
		},
		func() error {
			return cb.Row().After("gorm:row").Before("otel:after:row").Register("telemetry:after_row", p.after)
		},
		func() error {
			return cb.Raw().After("gorm:raw").Before("otel:after:raw").Register("telemetry:after_raw", p.after)
		},
	}
	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}

	p.logger.Info("Database tracing enabled",
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
		zap.Bool("include_query_vars", p.config.IncludeQueryVars),
	)
	return nil
}

func (p *DBTracingPlugin) before(db *gorm.DB) {
	db.InstanceSet(queryStartKey, p.now())
}

func (p *DBTracingPlugin) after(db *gorm.DB) {
	if db.Statement.Context == nil {
		return
	}
	span := trace.SpanFromContext(db.Statement.Context)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	v, ok := db.InstanceGet(queryStartKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}
	if elapsed := p.now().Sub(start); elapsed > p.config.SlowQueryThresh {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query", trace.WithAttributes(
			attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
		))
	}
}

var _ gorm.Plugin = (*DBTracingPlugin)(nil)
