package record

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeRecord is one recorded overtime shift for one employee
// within one period. Hours and Amount are always server-computed from
// the shift times, the employee's salary and the multiplier; the
// period reference is fixed at creation time and survives the period
// being closed later.
type OvertimeRecord struct {
	ID         int64
	EmployeeID int64
	PeriodID   int64
	Date       time.Time
	StartTime  string
	EndTime    string
	Hours      decimal.Decimal
	Multiplier decimal.Decimal
	Amount     decimal.Decimal
	Notes      string
	CreatedAt  time.Time
}
