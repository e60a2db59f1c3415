package backup

import (
	"context"
	"time"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/employee"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/period"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/record"
)

// Snapshot is the full persisted state at one consistent point.
type Snapshot struct {
	TakenAt   time.Time               `json:"taken_at"`
	Employees []employee.Employee     `json:"employees"`
	Periods   []period.Period         `json:"periods"`
	Records   []record.OvertimeRecord `json:"overtime_records"`
}

// SnapshotSource reads the whole database state atomically.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

type Result struct {
	Path      string `json:"path"`
	TakenAt   string `json:"taken_at"`
	Employees int    `json:"employees"`
	Periods   int    `json:"periods"`
	Records   int    `json:"overtime_records"`
}

// BackupService writes consistent snapshots to durable storage.
type BackupService interface {
	Take(ctx context.Context) (Result, error)
}
