package debt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateFromPercent(t *testing.T) {
	rate, err := NewRateFromPercent(d("1.5"))
	require.NoError(t, err)

	assertMoney(t, "1.5", rate.Percent())
	assertMoney(t, "0.015", rate.Fraction())
	assert.False(t, rate.IsZero())

	_, err = NewRateFromPercent(d("-0.1"))
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestRate_FractionDividesOnce(t *testing.T) {
	penalty, err := NewRateFromPercent(d("10"))
	require.NoError(t, err)

	// 10% stored, 0.10 applied: never 0.001
	assertMoney(t, "0.1", penalty.Fraction())
	assertMoney(t, "0.1", penalty.Fraction())
}

func TestConvertRatePercent(t *testing.T) {
	assertMoney(t, "3", ConvertRatePercent(d("3"), RatePeriodDay, RatePeriodDay))
	assertMoney(t, "0.1", ConvertRatePercent(d("3"), RatePeriodMonth, RatePeriodDay))
	assertMoney(t, "3", ConvertRatePercent(d("0.1"), RatePeriodDay, RatePeriodMonth))
	assertMoney(t, "0.06666666666666666667", ConvertRatePercent(d("2"), RatePeriodMonth, RatePeriodDay))
}

func TestRate_FractionKeepsStoredScale(t *testing.T) {
	rate, err := NewRateFromPercent(d("0.06666666666666666667"))
	require.NoError(t, err)
	assertMoney(t, "0.0006666666666666666667", rate.Fraction())
}

func TestZeroRate(t *testing.T) {
	assert.True(t, ZeroRate().IsZero())
	assert.True(t, ZeroRate().Equal(Rate{}))
}
