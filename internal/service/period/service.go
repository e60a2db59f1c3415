package period

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/period"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/database"
	"github.com/hmaq1985-lang/overtime-system/internal/repository/postgresql"
	"github.com/jackc/pgx/v5/pgconn"
)

// Name prefix for the successor period a close spawns.
const successorNamePrefix = "الفترة التالية "

type PeriodServiceImpl struct {
	db         *database.DB
	periodRepo period.PeriodRepository
	now        func() time.Time
}

func NewPeriodService(db *database.DB, periodRepo period.PeriodRepository) *PeriodServiceImpl {
	return &PeriodServiceImpl{
		db:         db,
		periodRepo: periodRepo,
		now:        time.Now,
	}
}

// WithNow overrides the clock for deterministic tests.
func (s *PeriodServiceImpl) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func toResponse(p period.Period) period.PeriodResponse {
	return period.PeriodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		Status:    string(p.Status),
		Year:      p.Year,
	}
}

// GetOpenPeriod implements period.PeriodService.
func (s *PeriodServiceImpl) GetOpenPeriod(ctx context.Context) (period.OpenPeriodResponse, error) {
	p, err := s.periodRepo.GetOpen(ctx)
	if err != nil {
		return period.OpenPeriodResponse{}, err
	}
	return period.OpenPeriodResponse{ID: p.ID, Name: p.Name}, nil
}

// ListPeriods implements period.PeriodService.
func (s *PeriodServiceImpl) ListPeriods(ctx context.Context) ([]period.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]period.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, toResponse(p))
	}
	return responses, nil
}

// CreatePeriod implements period.PeriodService. The currently open
// period is closed inside the same transaction, keeping the
// single-open-period invariant.
func (s *PeriodServiceImpl) CreatePeriod(ctx context.Context, req period.CreatePeriodRequest) (period.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PeriodResponse{}, err
	}

	now := s.now()
	var created period.Period

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		open, err := s.periodRepo.GetOpen(txCtx)
		if err == nil {
			if err := s.periodRepo.Close(txCtx, open.ID, now); err != nil {
				return err
			}
		} else if !errors.Is(err, period.ErrNoOpenPeriod) {
			return err
		}

		created, err = s.periodRepo.Create(txCtx, period.Period{
			Name:      req.Name,
			StartDate: now,
			EndDate:   now,
			Status:    period.PeriodStatusOpen,
			Year:      req.Year,
		})
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return period.PeriodResponse{}, period.ErrPeriodNameExists
		}
		return period.PeriodResponse{}, fmt.Errorf("failed to create period: %w", err)
	}

	return toResponse(created), nil
}

// ClosePeriod implements period.PeriodService. Close and reopen are one
// transaction: either the period is closed and its successor exists, or
// nothing changed. A partial application would leave zero open periods.
func (s *PeriodServiceImpl) ClosePeriod(ctx context.Context, id int64) (period.PeriodResponse, error) {
	now := s.now()
	var successor period.Period

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.periodRepo.Close(txCtx, id, now); err != nil {
			return err
		}

		var err error
		successor, err = s.periodRepo.Create(txCtx, period.Period{
			Name:      successorNamePrefix + now.Format("2006-01-02"),
			StartDate: now,
			EndDate:   now,
			Status:    period.PeriodStatusOpen,
			Year:      now.Year(),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, period.ErrPeriodNotFound) {
			return period.PeriodResponse{}, period.ErrPeriodNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return period.PeriodResponse{}, period.ErrPeriodNameExists
		}
		return period.PeriodResponse{}, fmt.Errorf("failed to close period %d: %w", id, err)
	}

	return toResponse(successor), nil
}
