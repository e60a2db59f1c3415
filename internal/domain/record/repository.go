package record

import (
	"context"

	"github.com/shopspring/decimal"
)

type RecordRepository interface {
	Create(ctx context.Context, rec OvertimeRecord) (OvertimeRecord, error)
	GetByID(ctx context.Context, id int64) (OvertimeRecord, error)
	// List returns records ordered by date ascending, then id
	// ascending. With both filter fields set it returns only the
	// matching employee/period rows; otherwise it returns every row.
	List(ctx context.Context, filter RecordFilter) ([]OvertimeRecord, error)
	Update(ctx context.Context, id int64, startTime, endTime string, hours, multiplier, amount decimal.Decimal, notes string) error
	Delete(ctx context.Context, id int64) error
	DeleteByEmployee(ctx context.Context, employeeID int64) error
}
