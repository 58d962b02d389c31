package debt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Installment is a slice of a title's principal with its own due date and paid flag.
// Installments inherit the interest and penalty rates of their title.
type Installment struct {
	ID      uuid.UUID
	TitleID uuid.UUID
	Number  int
	Value   decimal.Decimal
	DueDate time.Time
	IsPaid  bool
	PaidAt  *time.Time
}

// InstallmentPlanItem is an unsaved installment in a plan
type InstallmentPlanItem struct {
	Number  int
	Value   decimal.Decimal
	DueDate time.Time
}

// InstallmentAccrual pairs an installment with its accrual at a reference date
type InstallmentAccrual struct {
	Installment Installment
	Accrual     AccrualResult
}

// SplitInstallments divides value into count installments that sum exactly to value.
// Each installment gets value/count truncated to cents; the last one takes the remainder.
// Due dates step intervalMonths apart from firstDueDate, clamped to the last day of short months.
func SplitInstallments(value decimal.Decimal, count int, firstDueDate time.Time, intervalMonths int) ([]InstallmentPlanItem, error) {
	if !value.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if count < 1 || count > MaxInstallments {
		return nil, ErrInvalidInstallmentCount
	}
	if intervalMonths < 1 {
		intervalMonths = 1
	}
	if firstDueDate.IsZero() {
		return nil, ErrInvalidDueDate
	}

	base := value.Div(decimal.NewFromInt(int64(count))).Truncate(moneyPlaces)
	if !base.IsPositive() {
		return nil, ErrInvalidInstallmentCount
	}
	first := DateOnly(firstDueDate)

	plan := make([]InstallmentPlanItem, count)
	allocated := decimal.Zero
	for i := 0; i < count; i++ {
		amount := base
		if i == count-1 {
			amount = value.Sub(allocated)
		}
		allocated = allocated.Add(amount)
		plan[i] = InstallmentPlanItem{
			Number:  i + 1,
			Value:   amount,
			DueDate: AddMonthsClamped(first, i*intervalMonths),
		}
	}
	return plan, nil
}

// AddMonthsClamped adds n months to a date, keeping the day of month when it
// exists and otherwise using the last day of the target month (Jan 31 + 1 = Feb 28/29).
func AddMonthsClamped(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := target.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(target.Year(), target.Month(), d, 0, 0, 0, 0, time.UTC)
}
