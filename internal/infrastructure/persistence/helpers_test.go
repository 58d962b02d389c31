package persistence

import (
	"testing"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := Open(sqlite.Open(":memory:"))
	require.NoError(t, err)

	// every pooled connection to :memory: would see its own empty database
	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.DB.AutoMigrate(
		&models.DebtorModel{},
		&models.TitleModel{},
		&models.InstallmentModel{},
		&models.AuditEntryModel{},
	))
	return database.DB
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTitle(t *testing.T, number string, debtorID uuid.UUID, value string, due time.Time) *debt.Title {
	t.Helper()
	interest, err := debt.NewRateFromPercent(dec("0.1"))
	require.NoError(t, err)
	penalty, err := debt.NewRateFromPercent(dec("2"))
	require.NoError(t, err)

	title, err := debt.NewTitle(number, debtorID, "Contract "+number, debt.TitleTerms{
		Value:              dec(value),
		DueDate:            due,
		InterestRatePerDay: interest,
		PenaltyRate:        penalty,
	}, testNow)
	require.NoError(t, err)
	title.ClearDomainEvents()
	return title
}
