package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/period"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		job_title TEXT NOT NULL DEFAULT '',
		salary NUMERIC(14,3) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS periods (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('open', 'closed')),
		year INT NOT NULL
	)`,
	// At most one open period at any time.
	`CREATE UNIQUE INDEX IF NOT EXISTS periods_single_open_idx
		ON periods ((status)) WHERE status = 'open'`,
	`CREATE TABLE IF NOT EXISTS overtime_records (
		id BIGSERIAL PRIMARY KEY,
		employee_id BIGINT NOT NULL REFERENCES employees(id),
		period_id BIGINT NOT NULL REFERENCES periods(id),
		date DATE NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		hours NUMERIC(10,3) NOT NULL,
		multiplier NUMERIC(8,3) NOT NULL,
		overtime_amount NUMERIC(16,3) NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS overtime_records_employee_period_idx
		ON overtime_records (employee_id, period_id, date, id)`,
}

// Migrate creates the schema when it does not exist yet and seeds the
// first open period, so a fresh database is immediately usable.
func Migrate(ctx context.Context, db *database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return seedOpenPeriod(ctx, db, time.Now())
}

func seedOpenPeriod(ctx context.Context, db *database.DB, now time.Time) error {
	repo := NewPeriodRepository(db)

	_, err := repo.GetOpen(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, period.ErrNoOpenPeriod) {
		return err
	}

	today := now.Format("2006-01-02")
	_, err = repo.Create(ctx, period.Period{
		Name:      "الفترة المفتوحة الأولى " + today,
		StartDate: now,
		EndDate:   now,
		Status:    period.PeriodStatusOpen,
		Year:      now.Year(),
	})
	if err != nil {
		return fmt.Errorf("seed open period: %w", err)
	}
	return nil
}
