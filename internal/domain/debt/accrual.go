package debt

import (
	"fmt"
	"strings"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Accrual errors
var (
	ErrInvalidAmount = shared.NewDomainError("INVALID_AMOUNT", "Amount must not be negative")
	ErrInvalidRate   = shared.NewDomainError("INVALID_RATE", "Rate must not be negative")
)

// moneyPlaces is the number of fraction digits kept on money results
const moneyPlaces = 2

// RatePeriod is the number of days a periodic interest rate is denominated over
type RatePeriod int

const (
	RatePeriodDay   RatePeriod = 1
	RatePeriodMonth RatePeriod = 30
)

// IsValid checks if the period is a supported convention
func (p RatePeriod) IsValid() bool {
	return p == RatePeriodDay || p == RatePeriodMonth
}

// Days returns the period length in days
func (p RatePeriod) Days() int64 {
	return int64(p)
}

// String returns the configuration name of the period
func (p RatePeriod) String() string {
	switch p {
	case RatePeriodDay:
		return "day"
	case RatePeriodMonth:
		return "month"
	}
	return fmt.Sprintf("RatePeriod(%d)", int(p))
}

// ParseRatePeriod parses "day" or "month"
func ParseRatePeriod(s string) (RatePeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daily":
		return RatePeriodDay, nil
	case "month", "monthly":
		return RatePeriodMonth, nil
	}
	return 0, shared.NewDomainError("INVALID_RATE_PERIOD", fmt.Sprintf("Unknown rate period %q (expected day or month)", s))
}

// AccrualResult is the amount owed at a reference date, split into its parts
type AccrualResult struct {
	Principal   decimal.Decimal
	Interest    decimal.Decimal
	Penalty     decimal.Decimal
	Total       decimal.Decimal
	DaysOverdue int
}

// IsOverdue reports whether any accrual applied
func (r AccrualResult) IsOverdue() bool {
	return r.DaysOverdue > 0
}

// AccrualCalculator computes simple interest plus a flat penalty on overdue amounts.
// It holds only the rate period, fixed at construction, and never reads a clock.
type AccrualCalculator struct {
	period RatePeriod
}

// NewAccrualCalculator creates a calculator for rates denominated over the given period
func NewAccrualCalculator(period RatePeriod) (AccrualCalculator, error) {
	if !period.IsValid() {
		return AccrualCalculator{}, shared.NewDomainError("INVALID_RATE_PERIOD", fmt.Sprintf("Unsupported rate period %d", int(period)))
	}
	return AccrualCalculator{period: period}, nil
}

// RatePeriod returns the convention the calculator was built with
func (c AccrualCalculator) RatePeriod() RatePeriod {
	if c.period == 0 {
		return RatePeriodDay
	}
	return c.period
}

// Compute returns principal, interest, penalty and total owed at referenceDate.
//
// Rates are fractions (0.001 means 0.1%). Interest accrues linearly per
// calendar day past dueDate; the penalty applies once when overdue. A paid
// obligation accrues nothing. Rounding to cents happens once, at the end.
func (c AccrualCalculator) Compute(
	principal decimal.Decimal,
	dueDate, referenceDate time.Time,
	periodicRate, penaltyRate decimal.Decimal,
	isPaid bool,
) (AccrualResult, error) {
	if principal.IsNegative() {
		return AccrualResult{}, ErrInvalidAmount
	}
	if periodicRate.IsNegative() || penaltyRate.IsNegative() {
		return AccrualResult{}, ErrInvalidRate
	}

	days := 0
	if !isPaid {
		days = max(0, DaysBetween(dueDate, referenceDate))
	}

	if days == 0 {
		return AccrualResult{
			Principal: principal,
			Interest:  decimal.Zero,
			Penalty:   decimal.Zero,
			Total:     principal,
		}, nil
	}

	interest := principal.
		Mul(periodicRate).
		Mul(decimal.NewFromInt(int64(days))).
		Div(decimal.NewFromInt(c.RatePeriod().Days()))
	penalty := principal.Mul(penaltyRate)
	total := principal.Add(interest).Add(penalty)

	return AccrualResult{
		Principal:   principal,
		Interest:    interest.Round(moneyPlaces),
		Penalty:     penalty.Round(moneyPlaces),
		Total:       total.Round(moneyPlaces),
		DaysOverdue: days,
	}, nil
}

// DateOnly strips the time of day, keeping the calendar date as seen in t's location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from `from` to `to`; negative when to is earlier.
// Unix seconds are used instead of Sub, which saturates past ~292 years.
func DaysBetween(from, to time.Time) int {
	return int((DateOnly(to).Unix() - DateOnly(from).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
