package paycalc

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Monthly salary maps to a 30-day month of 8-hour days.
const baselineHoursPerMonth = 30 * 8

const clockLayout = "15:04"

var ErrInvalidClockTime = errors.New("invalid clock time, expected HH:MM")

var (
	minutesPerHour = decimal.NewFromInt(60)
	hoursDivisor   = decimal.NewFromInt(baselineHoursPerMonth)
)

// ComputeHours returns the elapsed duration between two HH:MM clock
// times in hours, rounded to 3 decimal places. A shift whose end is
// strictly earlier than its start is treated as crossing midnight.
// On a malformed input it returns decimal.Zero together with an error
// wrapping ErrInvalidClockTime.
func ComputeHours(start, end string) (decimal.Decimal, error) {
	from, err := time.Parse(clockLayout, start)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidClockTime, start)
	}
	to, err := time.Parse(clockLayout, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidClockTime, end)
	}

	if to.Before(from) {
		// Overnight shift
		to = to.Add(24 * time.Hour)
	}

	minutes := int64(to.Sub(from) / time.Minute)
	return decimal.NewFromInt(minutes).Div(minutesPerHour).Round(3), nil
}

// HourlyWage derives an hourly wage from a monthly salary using the
// fixed 240-hour baseline, rounded to 3 decimal places.
func HourlyWage(salary decimal.Decimal) decimal.Decimal {
	return salary.Div(hoursDivisor).Round(3)
}

// OvertimeAmount combines hours, hourly wage and multiplier into a
// currency amount, rounded to 3 decimal places.
func OvertimeAmount(hours, hourlyWage, multiplier decimal.Decimal) decimal.Decimal {
	return hours.Mul(hourlyWage).Mul(multiplier).Round(3)
}
