package debt

import (
	"time"

	"github.com/shopspring/decimal"
)

// TitleStatement is a title with every amount recomputed at a reference date
type TitleStatement struct {
	Title            *Title
	ReferenceDate    time.Time
	Accrual          AccrualResult
	Installments     []InstallmentAccrual
	OutstandingTotal decimal.Decimal
}

// Statement computes the title and installment accruals at referenceDate.
// With installments, the title amounts are the installment sums and the
// outstanding total is the sum of the open installments; otherwise it is the
// title total, or zero once paid.
func (t *Title) Statement(calc AccrualCalculator, referenceDate time.Time) (TitleStatement, error) {
	installments, err := t.InstallmentAccruals(calc, referenceDate)
	if err != nil {
		return TitleStatement{}, err
	}
	var accrual AccrualResult
	if len(installments) > 0 && !t.IsPaid {
		accrual = sumAccruals(t.OriginalValue, installments)
	} else if accrual, err = t.Accrual(calc, referenceDate); err != nil {
		return TitleStatement{}, err
	}

	outstanding := decimal.Zero
	switch {
	case len(installments) > 0:
		for _, ia := range installments {
			if !ia.Installment.IsPaid {
				outstanding = outstanding.Add(ia.Accrual.Total)
			}
		}
	case !t.IsPaid:
		outstanding = accrual.Total
	}

	return TitleStatement{
		Title:            t,
		ReferenceDate:    DateOnly(referenceDate),
		Accrual:          accrual,
		Installments:     installments,
		OutstandingTotal: outstanding,
	}, nil
}

// PlanPreview is an unsaved installment with the accrual it would carry
type PlanPreview struct {
	Item    InstallmentPlanItem
	Accrual AccrualResult
}

// PreviewPlan applies the same accrual rule to an unsaved plan, so a preview
// matches what the persisted title will report for the same reference date.
func PreviewPlan(calc AccrualCalculator, plan []InstallmentPlanItem, interestRatePerDay, penaltyRate Rate, referenceDate time.Time) ([]PlanPreview, error) {
	out := make([]PlanPreview, 0, len(plan))
	for _, item := range plan {
		result, err := calc.Compute(
			item.Value,
			item.DueDate,
			referenceDate,
			interestRatePerDay.Fraction(),
			penaltyRate.Fraction(),
			false,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, PlanPreview{Item: item, Accrual: result})
	}
	return out, nil
}
