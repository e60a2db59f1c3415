package employee

import (
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name     string          `json:"name"`
	JobTitle string          `json:"job_title"`
	Salary   decimal.Decimal `json:"salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Name is immutable after creation; only compensation fields change.
type UpdateEmployeeRequest struct {
	ID       int64           `json:"-"`
	JobTitle string          `json:"job_title"`
	Salary   decimal.Decimal `json:"salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	JobTitle   string          `json:"job_title"`
	Salary     decimal.Decimal `json:"salary"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
}
