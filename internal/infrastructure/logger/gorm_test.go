package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogger_LogMode(t *testing.T) {
	gl := NewGormLogger(zap.NewNop(), gormlogger.Info)
	changed, ok := gl.LogMode(gormlogger.Warn).(*GormLogger)
	require.True(t, ok)

	assert.Equal(t, gormlogger.Info, gl.level)
	assert.Equal(t, gormlogger.Warn, changed.level)
}

func TestGormLogger_Trace(t *testing.T) {
	sql := func() (string, int64) { return "SELECT * FROM titles", 3 }

	t.Run("logs errors", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Error)

		gl.Trace(context.Background(), time.Now(), sql, errors.New("conn refused"))
		require.Equal(t, 1, recorded.Len())
		entry := recorded.All()[0]
		assert.Equal(t, "Query failed", entry.Message)
		assert.Equal(t, "select", entry.ContextMap()["statement"])
		assert.Equal(t, "conn refused", entry.ContextMap()["error"])
	})

	t.Run("ignores record not found", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Error)

		gl.Trace(context.Background(), time.Now(), sql, gormlogger.ErrRecordNotFound)
		assert.Equal(t, 0, recorded.Len())
	})

	t.Run("warns on slow queries", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Warn, WithSlowThreshold(time.Millisecond))

		gl.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
		require.Equal(t, 1, recorded.Len())
		assert.Equal(t, zapcore.WarnLevel, recorded.All()[0].Level)
	})

	t.Run("carries request id", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Info)

		ctx := WithRequestID(context.Background(), "req-9")
		gl.Trace(ctx, time.Now(), sql, nil)
		require.Equal(t, 1, recorded.Len())
		assert.Equal(t, "req-9", recorded.All()[0].ContextMap()["request_id"])
	})

	t.Run("carries the scoped title and debtor", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Info)

		ctx := WithTitleID(WithRequestID(context.Background(), "req-9"), "title-1")
		ctx = WithDebtorID(ctx, "debtor-1")
		gl.Trace(ctx, time.Now(), func() (string, int64) {
			return `UPDATE "titles" SET "is_paid"=true WHERE id = 'title-1'`, 1
		}, nil)

		require.Equal(t, 1, recorded.Len())
		fields := recorded.All()[0].ContextMap()
		assert.Equal(t, "title-1", fields["title_id"])
		assert.Equal(t, "debtor-1", fields["debtor_id"])
		assert.Equal(t, "req-9", fields["request_id"])
		assert.Equal(t, "update", fields["statement"])
		assert.Equal(t, int64(1), fields["rows"])
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Info)

		gl.Trace(context.Background(), time.Now(), sql, gormlogger.ErrRecordNotFound)
		require.Equal(t, 1, recorded.Len())
		assert.Equal(t, zapcore.DebugLevel, recorded.All()[0].Level)
	})

	t.Run("truncates long statements", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Info, WithMaxSQLLength(20))

		long := "INSERT INTO installments VALUES " + strings.Repeat("(1, 2, 3),", 50)
		gl.Trace(context.Background(), time.Now(), func() (string, int64) { return long, 50 }, nil)
		require.Equal(t, 1, recorded.Len())
		logged := recorded.All()[0].ContextMap()["sql"].(string)
		assert.Equal(t, long[:20]+fmt.Sprintf("... (%d bytes)", len(long)), logged)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		gl := NewGormLogger(zap.New(core), gormlogger.Silent)

		gl.Trace(context.Background(), time.Now(), sql, errors.New("x"))
		assert.Equal(t, 0, recorded.Len())
	})
}

func TestGormLogger_Messages(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), gormlogger.Warn)
	ctx := WithTitleID(context.Background(), "title-1")

	gl.Info(ctx, "migrated %d tables", 4)
	gl.Warn(ctx, "retrying %s", "connection")
	gl.Error(ctx, "lost %s", "connection")

	entries := recorded.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "retrying connection", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "title-1", entries[1].ContextMap()["title_id"])
	assert.Equal(t, "db", entries[1].LoggerName)
}

func TestStatementKind(t *testing.T) {
	assert.Equal(t, "select", statementKind("SELECT * FROM titles"))
	assert.Equal(t, "insert", statementKind("  INSERT INTO installments"))
	assert.Equal(t, "with", statementKind("WITH\nx AS (SELECT 1) SELECT * FROM x"))
	assert.Equal(t, "", statementKind(""))
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel(""))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("INFO"))
}
