package period

import (
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a plausible year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Year      int    `json:"year"`
}

// OpenPeriodResponse is the minimal shape the record entry form needs.
type OpenPeriodResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
