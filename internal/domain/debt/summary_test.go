package debt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	calc := dailyCalculator(t)
	ref := date(2024, 3, 31)

	newTitle := func(value string, due int) Title {
		title, err := NewTitle("T", uuid.New(), "", TitleTerms{
			Value:              d(value),
			DueDate:            ref.AddDate(0, 0, -due),
			InterestRatePerDay: mustRate(t, "0.1"),
			PenaltyRate:        mustRate(t, "10"),
		}, testNow)
		require.NoError(t, err)
		return *title
	}

	overdue30 := newTitle("1000.00", 30)
	overdue10 := newTitle("500.00", 10)
	open := newTitle("200.00", -5)
	paid := newTitle("300.00", 40)
	paid.MarkPaid(testNow)

	summary, err := Summarize([]Title{overdue30, overdue10, open, paid}, calc, ref)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalTitles)
	assert.Equal(t, 2, summary.OverdueTitles)
	assert.Equal(t, 1, summary.OpenTitles)
	assert.Equal(t, 1, summary.PaidTitles)
	assertMoney(t, "2000.00", summary.TotalOriginal)
	// 1130 + (500 + 5 + 50) + 200 + 300
	assertMoney(t, "2185.00", summary.TotalUpdated)
	assertMoney(t, "35.00", summary.TotalInterest)
	assertMoney(t, "150.00", summary.TotalPenalty)
	assertMoney(t, "1885.00", summary.TotalOutstanding)
	assertMoney(t, "20", summary.AverageDaysOverdue)
}

func TestSummarize_SplitTitleUsesInstallments(t *testing.T) {
	calc := dailyCalculator(t)
	ref := date(2024, 3, 31)

	title, err := NewTitle("T", uuid.New(), "", TitleTerms{
		Value:              d("1000.00"),
		DueDate:            date(2024, 3, 1),
		InterestRatePerDay: mustRate(t, "1"),
		PenaltyRate:        mustRate(t, "2"),
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, title.ReplaceInstallments([]InstallmentPlanItem{
		{Value: d("500.00"), DueDate: date(2024, 3, 1)},
		{Value: d("500.00"), DueDate: date(2024, 4, 1)},
	}, testNow))
	_, err = title.PayInstallment(1, date(2024, 3, 2))
	require.NoError(t, err)

	summary, err := Summarize([]Title{*title}, calc, ref)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.OverdueTitles)
	assert.Equal(t, 1, summary.OpenTitles)
	assertMoney(t, "1000.00", summary.TotalUpdated)
	assertMoney(t, "0", summary.TotalInterest)
	assertMoney(t, "0", summary.TotalPenalty)
	assertMoney(t, "500.00", summary.TotalOutstanding)
	assertMoney(t, "0", summary.AverageDaysOverdue)
}

func TestSummarize_Empty(t *testing.T) {
	summary, err := Summarize(nil, dailyCalculator(t), date(2024, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalTitles)
	assertMoney(t, "0", summary.TotalUpdated)
	assertMoney(t, "0", summary.AverageDaysOverdue)
}
