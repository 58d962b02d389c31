package debt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PaymentAuditHandler appends every paid/unpaid transition to the audit trail
type PaymentAuditHandler struct {
	auditRepo debt.AuditRepository
	logger    *zap.Logger
}

// NewPaymentAuditHandler creates a new handler for payment events
func NewPaymentAuditHandler(auditRepo debt.AuditRepository, l *zap.Logger) *PaymentAuditHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &PaymentAuditHandler{auditRepo: auditRepo, logger: l}
}

// EventTypes returns the event types this handler is interested in
func (h *PaymentAuditHandler) EventTypes() []string {
	return []string{
		debt.EventTypeTitlePaid,
		debt.EventTypeTitleReopened,
		debt.EventTypeInstallmentPaid,
		debt.EventTypeInstallmentReopened,
	}
}

// Handle stores the event as an audit entry. The entry id is the event id,
// so a redelivered event cannot be stored twice.
func (h *PaymentAuditHandler) Handle(ctx context.Context, evt shared.DomainEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", evt.EventType(), err)
	}

	entry := &debt.AuditEntry{
		ID:            evt.EventID(),
		AggregateID:   evt.AggregateID(),
		AggregateType: evt.AggregateType(),
		EventType:     evt.EventType(),
		OccurredAt:    evt.OccurredAt(),
		Payload:       payload,
	}
	if err := h.auditRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	log := logger.With(ctx, h.logger).With(
		logger.EventType(evt.EventType()),
		logger.TitleID(evt.AggregateID().String()),
	)
	switch e := evt.(type) {
	case *debt.TitleReopenedEvent:
		log.Warn("Audit: paid title reopened",
			zap.String("number", e.Number),
			zap.Timep("previous_paid_at", e.PreviousPaidAt),
			zap.String("reason", e.Reason),
		)
	case *debt.InstallmentReopenedEvent:
		log.Warn("Audit: paid installment reopened",
			zap.Int("installment", e.InstallmentNumber),
			zap.Timep("previous_paid_at", e.PreviousPaidAt),
			zap.String("reason", e.Reason),
		)
	default:
		log.Info("Audit: payment recorded")
	}
	return nil
}

var _ shared.EventHandler = (*PaymentAuditHandler)(nil)
