package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/employee"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/record"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/database"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/paycalc"
	"github.com/hmaq1985-lang/overtime-system/internal/repository/postgresql"
	"github.com/jackc/pgx/v5/pgconn"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	recordRepo   record.RecordRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	recordRepo record.RecordRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		recordRepo:   recordRepo,
	}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		JobTitle:   emp.JobTitle,
		Salary:     emp.Salary,
		HourlyWage: paycalc.HourlyWage(emp.Salary),
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:     req.Name,
		JobTitle: req.JobTitle,
		Salary:   req.Salary,
	})
	if err != nil {
		// Check for duplicate name (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNameExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req.ID, req.JobTitle, req.Salary); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, req.ID)
}

// DeleteEmployee implements employee.EmployeeService. The employee and
// its overtime records go away together or not at all.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.recordRepo.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, id)
	})
}
