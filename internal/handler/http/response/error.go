package response

import (
	"errors"
	"net/http"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/employee"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/period"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/record"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/paycalc"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNameExists):
		Conflict(w, "Employee name already exists")

	// Period domain errors
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Period not found")
	case errors.Is(err, period.ErrPeriodNameExists):
		Conflict(w, "Period name already exists")
	case errors.Is(err, period.ErrNoOpenPeriod):
		NotFound(w, "No open period")

	// Ledger domain errors
	case errors.Is(err, record.ErrRecordNotFound):
		NotFound(w, "Overtime record not found")

	// Malformed shift times
	case errors.Is(err, paycalc.ErrInvalidClockTime):
		BadRequest(w, "Shift times must be 24-hour HH:MM values", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
