package record

import "context"

// RecordService defines business logic for the overtime ledger
type RecordService interface {
	// CreateRecord computes hours and amount from the shift times, the
	// employee's stored salary and the multiplier, then stores the
	// record under the currently open period.
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	// UpdateRecord recomputes hours and amount from the supplied shift
	// times and multiplier against the employee's current salary.
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)

	// DeleteRecord removes a single record
	DeleteRecord(ctx context.Context, id int64) error

	// ListRecords returns records matching the filter
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)

	// Preview computes hours and amount without persisting
	Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error)
}
