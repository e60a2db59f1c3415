package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/record"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

const recordColumns = `id, employee_id, period_id, date, start_time, end_time,
	hours, multiplier, overtime_amount, notes, created_at`

func scanRecord(row pgx.Row) (record.OvertimeRecord, error) {
	var rec record.OvertimeRecord
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.PeriodID,
		&rec.Date,
		&rec.StartTime,
		&rec.EndTime,
		&rec.Hours,
		&rec.Multiplier,
		&rec.Amount,
		&rec.Notes,
		&rec.CreatedAt,
	)
	return rec, err
}

// Create implements record.RecordRepository.
func (r *recordRepositoryImpl) Create(ctx context.Context, rec record.OvertimeRecord) (record.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_records
			(employee_id, period_id, date, start_time, end_time, hours, multiplier, overtime_amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + recordColumns

	created, err := scanRecord(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.PeriodID, rec.Date, rec.StartTime, rec.EndTime,
		rec.Hours, rec.Multiplier, rec.Amount, rec.Notes,
	))
	if err != nil {
		return record.OvertimeRecord{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return created, nil
}

// GetByID implements record.RecordRepository.
func (r *recordRepositoryImpl) GetByID(ctx context.Context, id int64) (record.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM overtime_records WHERE id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.OvertimeRecord{}, record.ErrRecordNotFound
		}
		return record.OvertimeRecord{}, fmt.Errorf("failed to get overtime record %d: %w", id, err)
	}

	return rec, nil
}

// List implements record.RecordRepository. A partial filter falls back
// to returning every record, matching the UI's "show everything" view.
func (r *recordRepositoryImpl) List(ctx context.Context, filter record.RecordFilter) ([]record.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM overtime_records ORDER BY date ASC, id ASC`
	args := []interface{}{}
	if filter.EmployeeID != nil && filter.PeriodID != nil {
		query = `SELECT ` + recordColumns + `
			FROM overtime_records
			WHERE employee_id = $1 AND period_id = $2
			ORDER BY date ASC, id ASC`
		args = append(args, *filter.EmployeeID, *filter.PeriodID)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records: %w", err)
	}
	defer rows.Close()

	var records []record.OvertimeRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Update implements record.RecordRepository.
func (r *recordRepositoryImpl) Update(ctx context.Context, id int64, startTime, endTime string, hours, multiplier, amount decimal.Decimal, notes string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_records
		SET start_time = $1, end_time = $2, hours = $3, multiplier = $4, overtime_amount = $5, notes = $6
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query, startTime, endTime, hours, multiplier, amount, notes, id)
	if err != nil {
		return fmt.Errorf("failed to update overtime record %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}

// Delete implements record.RecordRepository.
func (r *recordRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM overtime_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime record %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}

// DeleteByEmployee implements record.RecordRepository.
func (r *recordRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID int64) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM overtime_records WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete overtime records for employee %d: %w", employeeID, err)
	}

	return nil
}
