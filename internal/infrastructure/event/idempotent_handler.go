package event

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// eventKeyPrefix keeps event ids apart from request idempotency keys
// when both share one store.
const eventKeyPrefix = "event:"

// IdempotencyStats is a snapshot of an IdempotentHandler's counters
type IdempotencyStats struct {
	Processed int64 `json:"processed"`
	Duplicate int64 `json:"duplicate"`
	Failed    int64 `json:"failed"`
}

// IdempotentHandler wraps an EventHandler so that each event id is handled
// at most once while its key lives in the store.
type IdempotentHandler struct {
	handler shared.EventHandler
	store   shared.IdempotencyStore
	ttl     time.Duration
	logger  *zap.Logger

	processed atomic.Int64
	duplicate atomic.Int64
	failed    atomic.Int64
}

// IdempotentHandlerOption configures an IdempotentHandler
type IdempotentHandlerOption func(*IdempotentHandler)

// WithTTL sets how long a handled event id is remembered
func WithTTL(ttl time.Duration) IdempotentHandlerOption {
	return func(h *IdempotentHandler) {
		if ttl > 0 {
			h.ttl = ttl
		}
	}
}

// NewIdempotentHandler wraps handler with duplicate detection
func NewIdempotentHandler(handler shared.EventHandler, store shared.IdempotencyStore, l *zap.Logger, opts ...IdempotentHandlerOption) *IdempotentHandler {
	if l == nil {
		l = zap.NewNop()
	}
	h := &IdempotentHandler{
		handler: handler,
		store:   store,
		ttl:     shared.DefaultIdempotencyTTL,
		logger:  l,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// EventTypes delegates to the wrapped handler
func (h *IdempotentHandler) EventTypes() []string {
	return h.handler.EventTypes()
}

// Handle runs the wrapped handler unless the event id was already seen.
// A store failure falls through to handling, so an event is never dropped.
func (h *IdempotentHandler) Handle(ctx context.Context, evt shared.DomainEvent) error {
	log := logger.With(ctx, h.logger).With(
		logger.EventType(evt.EventType()),
		zap.String("event_id", evt.EventID().String()),
	)

	key := eventKeyPrefix + evt.EventID().String()
	isNew, err := h.store.MarkProcessed(ctx, key, h.ttl)
	switch {
	case err != nil:
		log.Warn("Idempotency check failed, handling anyway", zap.Error(err))
	case !isNew:
		h.duplicate.Add(1)
		log.Debug("Duplicate event skipped")
		return nil
	}

	if err := h.handler.Handle(ctx, evt); err != nil {
		h.failed.Add(1)
		// forget the id so a redelivery is handled again
		if isNew {
			if relErr := h.store.Release(ctx, key); relErr != nil {
				log.Warn("Failed to release event key", zap.Error(relErr))
			}
		}
		return err
	}
	h.processed.Add(1)
	return nil
}

// Stats returns the handler's counters
func (h *IdempotentHandler) Stats() IdempotencyStats {
	return IdempotencyStats{
		Processed: h.processed.Load(),
		Duplicate: h.duplicate.Load(),
		Failed:    h.failed.Load(),
	}
}

// Unwrap returns the wrapped handler
func (h *IdempotentHandler) Unwrap() shared.EventHandler {
	return h.handler
}

var _ shared.EventHandler = (*IdempotentHandler)(nil)
