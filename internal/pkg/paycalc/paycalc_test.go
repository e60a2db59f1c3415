package paycalc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHours_RegularShift(t *testing.T) {
	hours, err := ComputeHours("09:00", "17:00")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8).Equal(hours), "expected 8 hours, got %s", hours)
}

func TestComputeHours_OvernightShift(t *testing.T) {
	hours, err := ComputeHours("22:00", "06:00")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8).Equal(hours), "expected 8 hours, got %s", hours)
}

func TestComputeHours_PartialHour(t *testing.T) {
	hours, err := ComputeHours("09:00", "09:20")

	require.NoError(t, err)
	assert.Equal(t, "0.333", hours.StringFixed(3))
}

func TestComputeHours_ZeroLengthShift(t *testing.T) {
	hours, err := ComputeHours("09:00", "09:00")

	require.NoError(t, err)
	assert.True(t, hours.IsZero())
}

func TestComputeHours_MalformedInput(t *testing.T) {
	hours, err := ComputeHours("bad", "17:00")

	require.ErrorIs(t, err, ErrInvalidClockTime)
	assert.True(t, hours.IsZero())

	hours, err = ComputeHours("09:00", "25:99")

	require.ErrorIs(t, err, ErrInvalidClockTime)
	assert.True(t, hours.IsZero())
}

func TestHourlyWage(t *testing.T) {
	wage := HourlyWage(decimal.NewFromInt(240))
	assert.Equal(t, "1.000", wage.StringFixed(3))

	wage = HourlyWage(decimal.NewFromInt(220))
	assert.Equal(t, "0.917", wage.StringFixed(3))
}

func TestOvertimeAmount(t *testing.T) {
	amount := OvertimeAmount(
		decimal.NewFromInt(2),
		decimal.NewFromInt(10),
		decimal.RequireFromString("1.5"),
	)

	assert.Equal(t, "30.000", amount.StringFixed(3))
}

func TestOvertimeAmount_RoundsToThreePlaces(t *testing.T) {
	amount := OvertimeAmount(
		decimal.RequireFromString("1.333"),
		decimal.RequireFromString("0.917"),
		decimal.RequireFromString("1.5"),
	)

	assert.Equal(t, "1.834", amount.StringFixed(3))
}
