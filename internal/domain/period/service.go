package period

import "context"

// PeriodService defines business logic for payroll period lifecycle
type PeriodService interface {
	// GetOpenPeriod returns the currently open period
	GetOpenPeriod(ctx context.Context) (OpenPeriodResponse, error)

	// ListPeriods returns all periods, newest first
	ListPeriods(ctx context.Context) ([]PeriodResponse, error)

	// CreatePeriod opens a new named period. The currently open period,
	// if any, is closed in the same transaction so that at most one
	// period stays open.
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)

	// ClosePeriod closes the given period and opens its auto-named
	// successor in the same transaction. Returns the successor.
	ClosePeriod(ctx context.Context, id int64) (PeriodResponse, error)
}
