package debt

import (
	"github.com/shopspring/decimal"
)

// RatePlaces is the scale rates are stored at. A monthly rate converted to
// per day is off by at most 5e-21 percent, so interest drifts by less than a
// cent while principal times days stays under 2e20.
const RatePlaces = 20

// Rate is a percent-denominated rate as stored (10 means 10%).
// Fraction is the only place the percent is divided by 100.
type Rate struct {
	percent decimal.Decimal
}

// NewRateFromPercent validates a stored percent value
func NewRateFromPercent(percent decimal.Decimal) (Rate, error) {
	if percent.IsNegative() {
		return Rate{}, ErrInvalidRate
	}
	return Rate{percent: percent}, nil
}

// RateFromStored rebuilds a rate read back from storage.
// Stored rates were validated on the way in.
func RateFromStored(percent decimal.Decimal) Rate {
	return Rate{percent: percent}
}

// ZeroRate is a rate of 0%
func ZeroRate() Rate {
	return Rate{percent: decimal.Zero}
}

// Percent returns the stored percent value
func (r Rate) Percent() decimal.Decimal {
	return r.percent
}

// Fraction returns the rate as a fraction, ready for AccrualCalculator.Compute
func (r Rate) Fraction() decimal.Decimal {
	return r.percent.Shift(-2)
}

// IsZero reports whether the rate is 0%
func (r Rate) IsZero() bool {
	return r.percent.IsZero()
}

// Equal compares two rates by value
func (r Rate) Equal(other Rate) bool {
	return r.percent.Equal(other.percent)
}

// ConvertRatePercent re-denominates a periodic rate from one period to another,
// e.g. 3 (%/month) becomes 0.1 (%/day).
func ConvertRatePercent(percent decimal.Decimal, from, to RatePeriod) decimal.Decimal {
	if from == to {
		return percent
	}
	return percent.Mul(decimal.NewFromInt(to.Days())).DivRound(decimal.NewFromInt(from.Days()), RatePlaces)
}
