package report

import (
	"context"
	"fmt"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/employee"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/record"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/report"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/paycalc"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	recordRepo   record.RecordRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	recordRepo record.RecordRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		recordRepo:   recordRepo,
	}
}

// BuildTable shapes an ordered set of ledger entries into the export
// table: 1-based sequence numbers, running totals for hours and amount,
// Arabic labels and the right-to-left flag. It touches no storage.
func BuildTable(employeeName string, records []record.OvertimeRecord) report.Table {
	rows := make([]report.Row, 0, len(records))
	totalHours := decimal.Zero
	totalAmount := decimal.Zero

	for i, rec := range records {
		rows = append(rows, report.Row{
			Sequence:   i + 1,
			Date:       rec.Date.Format("2006-01-02"),
			StartTime:  rec.StartTime,
			EndTime:    rec.EndTime,
			Multiplier: rec.Multiplier,
			Hours:      rec.Hours,
			Amount:     rec.Amount,
			Notes:      rec.Notes,
		})
		totalHours = totalHours.Add(rec.Hours)
		totalAmount = totalAmount.Add(rec.Amount)
	}

	return report.Table{
		Title:       report.TitlePrefix + employeeName,
		Sheet:       report.SheetName,
		Headers:     report.Headers,
		Rows:        rows,
		TotalHours:  totalHours,
		TotalAmount: totalAmount,
		RightToLeft: true,
	}
}

func (s *ReportServiceImpl) load(ctx context.Context, employeeID, periodID int64) (employee.Employee, report.Table, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, report.Table{}, err
	}

	records, err := s.recordRepo.List(ctx, record.RecordFilter{
		EmployeeID: &employeeID,
		PeriodID:   &periodID,
	})
	if err != nil {
		return employee.Employee{}, report.Table{}, err
	}

	return emp, BuildTable(emp.Name, records), nil
}

// Summary implements report.ReportService.
func (s *ReportServiceImpl) Summary(ctx context.Context, employeeID, periodID int64) (report.SummaryResponse, error) {
	emp, table, err := s.load(ctx, employeeID, periodID)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	return report.SummaryResponse{
		EmployeeID:  emp.ID,
		Employee:    emp.Name,
		Salary:      emp.Salary,
		HourlyWage:  paycalc.HourlyWage(emp.Salary),
		Rows:        table.Rows,
		TotalHours:  table.TotalHours,
		TotalAmount: table.TotalAmount,
	}, nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, employeeID, periodID int64) (string, []byte, error) {
	emp, table, err := s.load(ctx, employeeID, periodID)
	if err != nil {
		return "", nil, err
	}

	data, err := writeWorkbook(table)
	if err != nil {
		return "", nil, fmt.Errorf("failed to render export workbook: %w", err)
	}

	return fmt.Sprintf("Overtime_%s.xlsx", emp.Name), data, nil
}
