package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/backup"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/record"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type snapshotSourceImpl struct {
	db *database.DB
}

func NewSnapshotSource(db *database.DB) backup.SnapshotSource {
	return &snapshotSourceImpl{db: db}
}

// Snapshot reads every table inside one repeatable-read read-only
// transaction so the result reflects a single consistent point.
func (s *snapshotSourceImpl) Snapshot(ctx context.Context) (backup.Snapshot, error) {
	tx, err := s.db.Pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	snapCtx := context.WithValue(ctx, txKey{}, tx)

	employees, err := NewEmployeeRepository(s.db).List(snapCtx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("snapshot employees: %w", err)
	}
	periods, err := NewPeriodRepository(s.db).List(snapCtx)
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("snapshot periods: %w", err)
	}
	records, err := NewRecordRepository(s.db).List(snapCtx, record.RecordFilter{})
	if err != nil {
		return backup.Snapshot{}, fmt.Errorf("snapshot overtime records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return backup.Snapshot{}, fmt.Errorf("close snapshot transaction: %w", err)
	}

	return backup.Snapshot{
		TakenAt:   time.Now().UTC(),
		Employees: employees,
		Periods:   periods,
		Records:   records,
	}, nil
}
