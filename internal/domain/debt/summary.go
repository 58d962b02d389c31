package debt

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSummary aggregates titles at a reference date for the dashboard.
// It is always recomputed from the titles and never stored.
type PortfolioSummary struct {
	ReferenceDate      time.Time
	TotalTitles        int
	PaidTitles         int
	OpenTitles         int
	OverdueTitles      int
	TotalOriginal      decimal.Decimal
	TotalUpdated       decimal.Decimal
	TotalInterest      decimal.Decimal
	TotalPenalty       decimal.Decimal
	TotalOutstanding   decimal.Decimal
	AverageDaysOverdue decimal.Decimal
}

// Summarize computes the portfolio summary of titles at referenceDate
func Summarize(titles []Title, calc AccrualCalculator, referenceDate time.Time) (PortfolioSummary, error) {
	s := PortfolioSummary{
		ReferenceDate:      DateOnly(referenceDate),
		TotalOriginal:      decimal.Zero,
		TotalUpdated:       decimal.Zero,
		TotalInterest:      decimal.Zero,
		TotalPenalty:       decimal.Zero,
		TotalOutstanding:   decimal.Zero,
		AverageDaysOverdue: decimal.Zero,
	}
	overdueDays := 0
	for i := range titles {
		t := &titles[i]
		st, err := t.Statement(calc, referenceDate)
		if err != nil {
			return PortfolioSummary{}, err
		}

		s.TotalTitles++
		s.TotalOriginal = s.TotalOriginal.Add(t.OriginalValue)
		s.TotalOutstanding = s.TotalOutstanding.Add(st.OutstandingTotal)
		s.TotalUpdated = s.TotalUpdated.Add(st.Accrual.Total)
		s.TotalInterest = s.TotalInterest.Add(st.Accrual.Interest)
		s.TotalPenalty = s.TotalPenalty.Add(st.Accrual.Penalty)

		switch t.StatusAt(referenceDate) {
		case TitleStatusPaid:
			s.PaidTitles++
		case TitleStatusOverdue:
			s.OverdueTitles++
			overdueDays += st.Accrual.DaysOverdue
		default:
			s.OpenTitles++
		}
	}
	if s.OverdueTitles > 0 {
		s.AverageDaysOverdue = decimal.NewFromInt(int64(overdueDays)).
			Div(decimal.NewFromInt(int64(s.OverdueTitles))).
			Round(1)
	}
	return s, nil
}
