package debt

import (
	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/debt"
	"github.com/shopspring/decimal"
)

// toStoredRates converts submitted rates into the stored units: interest in
// percent per day, penalty in percent. A monthly interest rate is divided by
// 30 here and nowhere else.
func toStoredRates(in RateInput, defaultPeriod debt.RatePeriod) (interest, penalty debt.Rate, err error) {
	period := defaultPeriod
	if in.InterestRatePeriod != "" {
		period, err = debt.ParseRatePeriod(in.InterestRatePeriod)
		if err != nil {
			return debt.Rate{}, debt.Rate{}, err
		}
	}

	perDay := debt.ConvertRatePercent(in.InterestRate, period, debt.RatePeriodDay).Round(debt.RatePlaces)
	interest, err = debt.NewRateFromPercent(perDay)
	if err != nil {
		return debt.Rate{}, debt.Rate{}, err
	}
	penalty, err = debt.NewRateFromPercent(in.PenaltyRate.Round(debt.RatePlaces))
	if err != nil {
		return debt.Rate{}, debt.Rate{}, err
	}
	return interest, penalty, nil
}

func titleTerms(value decimal.Decimal, due *Date, in RateInput, defaultPeriod debt.RatePeriod) (debt.TitleTerms, error) {
	interest, penalty, err := toStoredRates(in, defaultPeriod)
	if err != nil {
		return debt.TitleTerms{}, err
	}
	terms := debt.TitleTerms{
		Value:              value,
		InterestRatePerDay: interest,
		PenaltyRate:        penalty,
	}
	if due != nil {
		terms.DueDate = due.Time
	}
	return terms, nil
}
