package period

import (
	"context"
	"time"
)

type PeriodRepository interface {
	Create(ctx context.Context, p Period) (Period, error)
	GetByID(ctx context.Context, id int64) (Period, error)
	// GetOpen returns the single open period, or ErrNoOpenPeriod.
	GetOpen(ctx context.Context) (Period, error)
	// List returns all periods ordered by year descending, then id
	// descending.
	List(ctx context.Context) ([]Period, error)
	// Close marks a period closed and stamps its end date. Returns
	// ErrPeriodNotFound when no open period has that id.
	Close(ctx context.Context, id int64, endDate time.Time) error
}
