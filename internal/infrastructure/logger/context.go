package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey    contextKey = "logger"
	requestIDKey contextKey = "request_id"
	actorKey     contextKey = "actor"
	titleIDKey   contextKey = "title_id"
	debtorIDKey  contextKey = "debtor_id"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger from context, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// WithRequestID stores the request id in the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request id from context
func GetRequestID(ctx context.Context) string {
	s, _ := ctx.Value(requestIDKey).(string)
	return s
}

// WithActor stores the authenticated operator's username in the context
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor retrieves the operator's username from context
func GetActor(ctx context.Context) string {
	s, _ := ctx.Value(actorKey).(string)
	return s
}

// WithTitleID scopes the context to one title, so every entry logged under it
// (SQL included) carries title_id
func WithTitleID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, titleIDKey, id)
}

// GetTitleID retrieves the scoped title id from context
func GetTitleID(ctx context.Context) string {
	s, _ := ctx.Value(titleIDKey).(string)
	return s
}

// WithDebtorID scopes the context to one debtor
func WithDebtorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, debtorIDKey, id)
}

// GetDebtorID retrieves the scoped debtor id from context
func GetDebtorID(ctx context.Context) string {
	s, _ := ctx.Value(debtorIDKey).(string)
	return s
}

// L returns the context logger enriched with trace, request and actor fields.
//
//	logger.L(ctx).Info("title paid", logger.TitleID(id))
func L(ctx context.Context) *zap.Logger {
	return enrich(ctx, FromContext(ctx))
}

// With enriches the given logger with the context fields
func With(ctx context.Context, l *zap.Logger) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return enrich(ctx, l)
}

func enrich(ctx context.Context, l *zap.Logger) *zap.Logger {
	fields := make([]zap.Field, 0, 6)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	if id := GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if actor := GetActor(ctx); actor != "" {
		fields = append(fields, zap.String("actor", actor))
	}
	if id := GetTitleID(ctx); id != "" {
		fields = append(fields, TitleID(id))
	}
	if id := GetDebtorID(ctx); id != "" {
		fields = append(fields, DebtorID(id))
	}
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}
