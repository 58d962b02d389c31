//go:build integration

package integration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/persistence"
	"github.com/felipesbcabral/desafio-pc-sub000/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repoNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newDebtor(t *testing.T, name, document string) *debt.Debtor {
	t.Helper()
	d, err := debt.NewDebtor(debt.DebtorContact{Name: name, Document: document, Email: "contact@example.com"}, repoNow)
	require.NoError(t, err)
	return d
}

func newTitle(t *testing.T, number string, debtorID uuid.UUID, value string, due time.Time) *debt.Title {
	t.Helper()
	interest, err := debt.NewRateFromPercent(decimal.RequireFromString("0.0333333333"))
	require.NoError(t, err)
	penalty, err := debt.NewRateFromPercent(decimal.RequireFromString("2"))
	require.NoError(t, err)

	title, err := debt.NewTitle(number, debtorID, "Contract "+number, debt.TitleTerms{
		Value:              decimal.RequireFromString(value),
		DueDate:            due,
		InterestRatePerDay: interest,
		PenaltyRate:        penalty,
	}, repoNow)
	require.NoError(t, err)
	title.ClearDomainEvents()
	return title
}

func TestDebtorRepository_Postgres(t *testing.T) {
	tdb := NewTestDB(t)
	repo := persistence.NewGormDebtorRepository(tdb.DB)
	ctx := testutil.ContextWithTimeout(t, time.Minute)

	jose := newDebtor(t, "José Conceição", "529.982.247-25")
	require.NoError(t, repo.Save(ctx, jose))
	require.NoError(t, repo.Save(ctx, newDebtor(t, "Acme Ltda", "11.222.333/0001-81")))

	t.Run("stores the normalized document", func(t *testing.T) {
		found, err := repo.FindByDocument(ctx, "52998224725")
		require.NoError(t, err)
		assert.Equal(t, jose.ID, found.ID)
		assert.Equal(t, "José Conceição", found.Name)
	})

	t.Run("search ignores accents and case", func(t *testing.T) {
		filter := debt.DebtorFilter{Filter: shared.Filter{Page: 1, PageSize: 10, Search: "conceicao"}}
		found, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, jose.ID, found[0].ID)

		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("document is unique", func(t *testing.T) {
		exists, err := repo.ExistsByDocument(ctx, "52998224725")
		require.NoError(t, err)
		assert.True(t, exists)

		assert.Error(t, repo.Save(ctx, newDebtor(t, "Other", "529.982.247-25")))
	})
}

func TestTitleRepository_Postgres(t *testing.T) {
	tdb := NewTestDB(t)
	debtors := persistence.NewGormDebtorRepository(tdb.DB)
	titles := persistence.NewGormTitleRepository(tdb.DB)
	ctx := testutil.ContextWithTimeout(t, time.Minute)

	debtor := newDebtor(t, "Maria Souza", "529.982.247-25")
	require.NoError(t, debtors.Save(ctx, debtor))

	number, err := titles.GenerateTitleNumber(ctx, repoNow)
	require.NoError(t, err)
	assert.Equal(t, "TIT-20240301-00001", number)

	title := newTitle(t, number, debtor.ID, "1000.00", date(2024, 3, 10))
	plan, err := debt.SplitInstallments(title.OriginalValue, 3, date(2024, 3, 10), 1)
	require.NoError(t, err)
	require.NoError(t, title.ReplaceInstallments(plan, repoNow))
	require.NoError(t, titles.Save(ctx, title))

	t.Run("round trips dates and decimals", func(t *testing.T) {
		found, err := titles.FindByID(ctx, title.ID)
		require.NoError(t, err)

		assert.Equal(t, date(2024, 3, 10), found.DueDate.UTC())
		assert.True(t, found.OriginalValue.Equal(decimal.RequireFromString("1000.00")))
		assert.True(t, found.InterestRatePerDay.Percent().Equal(decimal.RequireFromString("0.0333333333")))
		require.Len(t, found.Installments, 3)
		assert.True(t, found.Installments[2].Value.Equal(decimal.RequireFromString("333.34")))
	})

	t.Run("numbers continue the daily sequence", func(t *testing.T) {
		next, err := titles.GenerateTitleNumber(ctx, repoNow)
		require.NoError(t, err)
		assert.Equal(t, "TIT-20240301-00002", next)
	})

	t.Run("status filters use the reference date", func(t *testing.T) {
		overdue := debt.TitleStatusOverdue
		filter := debt.TitleFilter{
			Filter:        shared.Filter{Page: 1, PageSize: 10},
			Status:        &overdue,
			ReferenceDate: date(2024, 3, 20),
		}
		found, err := titles.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, found, 1)

		filter.ReferenceDate = date(2024, 3, 10)
		found, err = titles.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("stale writes conflict", func(t *testing.T) {
		stale, err := titles.FindByID(ctx, title.ID)
		require.NoError(t, err)
		fresh, err := titles.FindByID(ctx, title.ID)
		require.NoError(t, err)

		require.True(t, fresh.MarkPaid(repoNow))
		require.NoError(t, titles.SaveWithLock(ctx, fresh))

		require.True(t, stale.MarkPaid(repoNow))
		assert.ErrorIs(t, titles.SaveWithLock(ctx, stale), shared.ErrConcurrencyConflict)
	})

	t.Run("debtor with titles cannot be removed", func(t *testing.T) {
		exists, err := titles.ExistsByDebtor(ctx, debtor.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		assert.Error(t, debtors.Delete(ctx, debtor.ID))
	})

	t.Run("delete removes installments", func(t *testing.T) {
		require.NoError(t, titles.Delete(ctx, title.ID))

		var count int64
		require.NoError(t, tdb.DB.Table("installments").Where("title_id = ?", title.ID).Count(&count).Error)
		assert.Zero(t, count)
		assert.ErrorIs(t, titles.Delete(ctx, title.ID), shared.ErrNotFound)
	})
}

func TestAuditRepository_Postgres(t *testing.T) {
	tdb := NewTestDB(t)
	repo := persistence.NewGormAuditRepository(tdb.DB)
	ctx := testutil.ContextWithTimeout(t, time.Minute)
	titleID := testutil.NewTestUUID("audited-title")

	for i, eventType := range []string{debt.EventTypeTitlePaid, debt.EventTypeTitleReopened} {
		require.NoError(t, repo.Append(ctx, &debt.AuditEntry{
			ID:            uuid.New(),
			AggregateID:   titleID,
			AggregateType: debt.AggregateTypeTitle,
			EventType:     eventType,
			OccurredAt:    repoNow.Add(time.Duration(i) * time.Minute),
			Payload:       json.RawMessage(`{"reason":"chargeback"}`),
		}))
	}

	entries, err := repo.FindByAggregate(ctx, titleID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, debt.EventTypeTitlePaid, entries[0].EventType)
	assert.Equal(t, debt.EventTypeTitleReopened, entries[1].EventType)
	assert.JSONEq(t, `{"reason":"chargeback"}`, string(entries[1].Payload))
}
