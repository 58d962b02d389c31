package debt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPaymentAuditHandler_EventTypes(t *testing.T) {
	h := NewPaymentAuditHandler(new(MockAuditRepository), nil)
	assert.ElementsMatch(t, []string{
		debt.EventTypeTitlePaid,
		debt.EventTypeTitleReopened,
		debt.EventTypeInstallmentPaid,
		debt.EventTypeInstallmentReopened,
	}, h.EventTypes())
}

func TestPaymentAuditHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("stores reopen with reason and warns", func(t *testing.T) {
		repo := new(MockAuditRepository)
		core, logs := observer.New(zapcore.InfoLevel)
		h := NewPaymentAuditHandler(repo, zap.New(core))

		title := newTestTitle(t)
		title.MarkPaid(fixedNow)
		require.NoError(t, title.MarkUnpaid(fixedNow, "chargeback"))
		evt := title.GetDomainEvents()[1]

		var stored *debt.AuditEntry
		repo.On("Append", mock.Anything, mock.AnythingOfType("*debt.AuditEntry")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*debt.AuditEntry) }).
			Return(nil)

		require.NoError(t, h.Handle(ctx, evt))

		require.NotNil(t, stored)
		assert.Equal(t, evt.EventID(), stored.ID)
		assert.Equal(t, title.ID, stored.AggregateID)
		assert.Equal(t, debt.EventTypeTitleReopened, stored.EventType)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(stored.Payload, &payload))
		assert.Equal(t, "chargeback", payload["reason"])
		assert.NotEmpty(t, payload["previous_paid_at"])

		warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
		require.Len(t, warnings, 1)
		assert.Equal(t, "chargeback", warnings[0].ContextMap()["reason"])
	})

	t.Run("stores payment", func(t *testing.T) {
		repo := new(MockAuditRepository)
		h := NewPaymentAuditHandler(repo, nil)
		title := newTestTitle(t)
		title.MarkPaid(fixedNow)
		repo.On("Append", mock.Anything, mock.MatchedBy(func(e *debt.AuditEntry) bool {
			return e.EventType == debt.EventTypeTitlePaid
		})).Return(nil)

		require.NoError(t, h.Handle(ctx, title.GetDomainEvents()[0]))
		repo.AssertExpectations(t)
	})

	t.Run("propagates storage failure", func(t *testing.T) {
		repo := new(MockAuditRepository)
		h := NewPaymentAuditHandler(repo, nil)
		title := newTestTitle(t)
		title.MarkPaid(fixedNow)
		repo.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		err := h.Handle(ctx, title.GetDomainEvents()[0])
		assert.ErrorContains(t, err, "disk full")
	})
}
