package report

import "context"

// ReportService shapes ledger entries for one employee/period pair
// into summaries and spreadsheet exports.
type ReportService interface {
	// Summary returns the employee's wage figures together with the
	// period's rows and totals
	Summary(ctx context.Context, employeeID, periodID int64) (SummaryResponse, error)

	// Export renders the employee/period table as an xlsx workbook and
	// returns the suggested download filename alongside the bytes
	Export(ctx context.Context, employeeID, periodID int64) (string, []byte, error)
}
