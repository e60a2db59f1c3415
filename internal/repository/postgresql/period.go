package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/period"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type periodRepositoryImpl struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepositoryImpl{db: db}
}

// Create implements period.PeriodRepository.
func (r *periodRepositoryImpl) Create(ctx context.Context, p period.Period) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO periods (name, start_date, end_date, status, year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, start_date, end_date, status, year
	`

	var created period.Period
	err := q.QueryRow(ctx, query, p.Name, p.StartDate, p.EndDate, p.Status, p.Year).Scan(
		&created.ID,
		&created.Name,
		&created.StartDate,
		&created.EndDate,
		&created.Status,
		&created.Year,
	)
	if err != nil {
		return period.Period{}, fmt.Errorf("failed to create period: %w", err)
	}

	return created, nil
}

// GetByID implements period.PeriodRepository.
func (r *periodRepositoryImpl) GetByID(ctx context.Context, id int64) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, status, year
		FROM periods
		WHERE id = $1
	`

	var p period.Period
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.Period{}, period.ErrPeriodNotFound
		}
		return period.Period{}, fmt.Errorf("failed to get period %d: %w", id, err)
	}

	return p, nil
}

// GetOpen implements period.PeriodRepository.
func (r *periodRepositoryImpl) GetOpen(ctx context.Context) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, status, year
		FROM periods
		WHERE status = 'open'
	`

	var p period.Period
	err := q.QueryRow(ctx, query).Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return period.Period{}, period.ErrNoOpenPeriod
		}
		return period.Period{}, fmt.Errorf("failed to get open period: %w", err)
	}

	return p, nil
}

// List implements period.PeriodRepository.
func (r *periodRepositoryImpl) List(ctx context.Context) ([]period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, status, year
		FROM periods
		ORDER BY year DESC, id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	var periods []period.Period
	for rows.Next() {
		var p period.Period
		if err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.Year); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}

// Close implements period.PeriodRepository.
func (r *periodRepositoryImpl) Close(ctx context.Context, id int64, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE periods
		SET status = 'closed', end_date = $1
		WHERE id = $2 AND status = 'open'
	`

	tag, err := q.Exec(ctx, query, endDate, id)
	if err != nil {
		return fmt.Errorf("failed to close period %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return period.ErrPeriodNotFound
	}

	return nil
}
