package record

import (
	"time"

	"github.com/hmaq1985-lang/overtime-system/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRecordRequest struct {
	EmployeeID int64           `json:"employee_id"`
	Date       string          `json:"date"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Notes      string          `json:"notes"`

	date time.Time
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if date, ok := validator.IsValidDate(r.Date); ok {
		r.date = date
	} else {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	errs = append(errs, validateShift(r.StartTime, r.EndTime, r.Multiplier)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Day returns the parsed date. Only meaningful after Validate succeeds.
func (r *CreateRecordRequest) Day() time.Time {
	return r.date
}

type UpdateRecordRequest struct {
	ID         int64           `json:"-"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Notes      string          `json:"notes"`
}

func (r *UpdateRecordRequest) Validate() error {
	errs := validateShift(r.StartTime, r.EndTime, r.Multiplier)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateShift(start, end string, multiplier decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidClockTime(start) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a 24-hour HH:MM time"})
	}
	if !validator.IsValidClockTime(end) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a 24-hour HH:MM time"})
	}
	if multiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be non-negative"})
	}

	return errs
}

// RecordFilter narrows List to one employee/period pair. Partial
// filters are ignored: unless both are set, all records are returned.
type RecordFilter struct {
	EmployeeID *int64
	PeriodID   *int64
}

type RecordResponse struct {
	ID         int64           `json:"id"`
	EmployeeID int64           `json:"employee_id"`
	PeriodID   int64           `json:"period_id"`
	Date       string          `json:"date"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Hours      decimal.Decimal `json:"hours"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Amount     decimal.Decimal `json:"overtime_amount"`
	Notes      string          `json:"notes"`
	CreatedAt  string          `json:"created_at"`
}

// PreviewRequest asks for hours/amount computation without persisting
// anything; it mirrors the entry form's live calculation.
type PreviewRequest struct {
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a 24-hour HH:MM time"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a 24-hour HH:MM time"})
	}
	if r.Multiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PreviewResponse struct {
	Hours  decimal.Decimal `json:"hours"`
	Amount decimal.Decimal `json:"amount"`
}
