package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/employee"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/period"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/record"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/paycalc"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/validator"
)

type RecordServiceImpl struct {
	recordRepo   record.RecordRepository
	employeeRepo employee.EmployeeRepository
	periodRepo   period.PeriodRepository
}

func NewRecordService(
	recordRepo record.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	periodRepo period.PeriodRepository,
) record.RecordService {
	return &RecordServiceImpl{
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
		periodRepo:   periodRepo,
	}
}

func toResponse(rec record.OvertimeRecord) record.RecordResponse {
	return record.RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		PeriodID:   rec.PeriodID,
		Date:       rec.Date.Format("2006-01-02"),
		StartTime:  rec.StartTime,
		EndTime:    rec.EndTime,
		Hours:      rec.Hours,
		Multiplier: rec.Multiplier,
		Amount:     rec.Amount,
		Notes:      rec.Notes,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
}

// CreateRecord implements record.RecordService. Hours and amount are
// never taken from the client; they are derived here from the shift
// times, the employee's stored salary and the multiplier.
func (s *RecordServiceImpl) CreateRecord(ctx context.Context, req record.CreateRecordRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return record.RecordResponse{}, err
	}

	open, err := s.periodRepo.GetOpen(ctx)
	if err != nil {
		return record.RecordResponse{}, err
	}

	hours, err := paycalc.ComputeHours(req.StartTime, req.EndTime)
	if err != nil {
		return record.RecordResponse{}, shiftTimesError(err)
	}
	amount := paycalc.OvertimeAmount(hours, paycalc.HourlyWage(emp.Salary), req.Multiplier)

	created, err := s.recordRepo.Create(ctx, record.OvertimeRecord{
		EmployeeID: req.EmployeeID,
		PeriodID:   open.ID,
		Date:       req.Day(),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Hours:      hours,
		Multiplier: req.Multiplier,
		Amount:     amount,
		Notes:      req.Notes,
	})
	if err != nil {
		return record.RecordResponse{}, fmt.Errorf("failed to save overtime record: %w", err)
	}

	return toResponse(created), nil
}

// UpdateRecord implements record.RecordService. The stored hours and
// amount are recomputed against the employee's current salary; any
// derived values a client might send are ignored.
func (s *RecordServiceImpl) UpdateRecord(ctx context.Context, req record.UpdateRecordRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	rec, err := s.recordRepo.GetByID(ctx, req.ID)
	if err != nil {
		return record.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, rec.EmployeeID)
	if err != nil {
		return record.RecordResponse{}, err
	}

	hours, err := paycalc.ComputeHours(req.StartTime, req.EndTime)
	if err != nil {
		return record.RecordResponse{}, shiftTimesError(err)
	}
	amount := paycalc.OvertimeAmount(hours, paycalc.HourlyWage(emp.Salary), req.Multiplier)

	if err := s.recordRepo.Update(ctx, req.ID, req.StartTime, req.EndTime, hours, req.Multiplier, amount, req.Notes); err != nil {
		return record.RecordResponse{}, err
	}

	updated, err := s.recordRepo.GetByID(ctx, req.ID)
	if err != nil {
		return record.RecordResponse{}, err
	}
	return toResponse(updated), nil
}

// DeleteRecord implements record.RecordService.
func (s *RecordServiceImpl) DeleteRecord(ctx context.Context, id int64) error {
	return s.recordRepo.Delete(ctx, id)
}

// ListRecords implements record.RecordService.
func (s *RecordServiceImpl) ListRecords(ctx context.Context, filter record.RecordFilter) ([]record.RecordResponse, error) {
	records, err := s.recordRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]record.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

// Preview implements record.RecordService.
func (s *RecordServiceImpl) Preview(ctx context.Context, req record.PreviewRequest) (record.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return record.PreviewResponse{}, err
	}

	hours, err := paycalc.ComputeHours(req.StartTime, req.EndTime)
	if err != nil {
		return record.PreviewResponse{}, shiftTimesError(err)
	}

	return record.PreviewResponse{
		Hours:  hours,
		Amount: paycalc.OvertimeAmount(hours, req.HourlyWage, req.Multiplier),
	}, nil
}

// shiftTimesError converts a paycalc parse failure into the field-level
// validation shape the HTTP boundary reports.
func shiftTimesError(err error) error {
	if errors.Is(err, paycalc.ErrInvalidClockTime) {
		return validator.ValidationErrors{
			{Field: "start_time", Message: "must be a 24-hour HH:MM time"},
			{Field: "end_time", Message: "must be a 24-hour HH:MM time"},
		}
	}
	return err
}
