package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type tracedRow struct {
	ID   int
	Name string
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return recorder, tp
}

func attrMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}

func TestDBTracingPlugin_Disabled(t *testing.T) {
	recorder, tp := newRecorder(t)
	db := openSQLite(t)

	plugin := NewDBTracingPlugin(DBTracingConfig{TracerProvider: tp}, nil)
	require.NoError(t, db.Use(plugin))
	require.NoError(t, db.AutoMigrate(&tracedRow{}))

	assert.Empty(t, recorder.Ended())
	assert.Equal(t, 200*time.Millisecond, plugin.config.SlowQueryThresh)
}

func TestDBTracingPlugin_RecordsQuerySpans(t *testing.T) {
	recorder, tp := newRecorder(t)
	db := openSQLite(t)

	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true
	cfg.TracerProvider = tp
	require.NoError(t, db.Use(NewDBTracingPlugin(cfg, zap.NewNop())))
	require.NoError(t, db.AutoMigrate(&tracedRow{}))

	ctx, parent := tp.Tracer("test").Start(context.Background(), "parent")
	require.NoError(t, db.WithContext(ctx).Create(&tracedRow{ID: 1, Name: "a"}).Error)
	var rows []tracedRow
	require.NoError(t, db.WithContext(ctx).Find(&rows).Error)
	parent.End()

	assert.Len(t, rows, 1)
	var dbSpans int
	for _, s := range recorder.Ended() {
		if s.Parent().SpanID() == parent.SpanContext().SpanID() {
			dbSpans++
		}
	}
	assert.GreaterOrEqual(t, dbSpans, 2)
}

func TestDBTracingPlugin_AfterAnnotatesSpan(t *testing.T) {
	recorder, tp := newRecorder(t)
	db := openSQLite(t)

	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: true, SlowQueryThresh: 100 * time.Millisecond}, zap.NewNop())
	plugin.now = func() time.Time { return clock }

	ctx, span := tp.Tracer("test").Start(context.Background(), "query")
	tx := db.WithContext(ctx).Table("titles")
	tx.Statement.RowsAffected = 3
	tx.Error = errors.New("boom")

	plugin.before(tx)
	clock = clock.Add(250 * time.Millisecond)
	plugin.after(tx)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "titles", attrs["db.sql.table"].AsString())
	assert.Equal(t, int64(3), attrs["db.rows_affected"].AsInt64())
	assert.True(t, attrs["db.slow_query"].AsBool())
	assert.Equal(t, int64(250), attrs["db.query_duration_ms"].AsInt64())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
}

func TestDBTracingPlugin_AfterIgnoresRecordNotFound(t *testing.T) {
	recorder, tp := newRecorder(t)
	db := openSQLite(t)
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: true}, zap.NewNop())

	ctx, span := tp.Tracer("test").Start(context.Background(), "query")
	tx := db.WithContext(ctx).Table("titles")
	tx.Error = gorm.ErrRecordNotFound

	plugin.before(tx)
	plugin.after(tx)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	_, slow := attrMap(ended[0].Attributes())["db.slow_query"]
	assert.False(t, slow)
}
