package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/backup"
	"github.com/hmaq1985-lang/overtime-system/internal/pkg/storage"
)

type BackupServiceImpl struct {
	source      backup.SnapshotSource
	fileStorage storage.FileStorage
}

func NewBackupService(source backup.SnapshotSource, fileStorage storage.FileStorage) backup.BackupService {
	return &BackupServiceImpl{
		source:      source,
		fileStorage: fileStorage,
	}
}

// Take implements backup.BackupService. The snapshot source guarantees
// a consistent point; the written file carries a timestamped, unique
// name so repeated backups never clobber each other.
func (s *BackupServiceImpl) Take(ctx context.Context) (backup.Result, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return backup.Result{}, fmt.Errorf("failed to snapshot database: %w", err)
	}

	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return backup.Result{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	name := fmt.Sprintf("overtime_snapshot_%s_%s.json",
		snap.TakenAt.Format("20060102_150405"),
		uuid.NewString()[:8],
	)

	path, err := s.fileStorage.Upload(ctx, bytes.NewReader(payload), name, "application/json")
	if err != nil {
		return backup.Result{}, fmt.Errorf("failed to store snapshot: %w", err)
	}

	return backup.Result{
		Path:      path,
		TakenAt:   snap.TakenAt.Format(time.RFC3339),
		Employees: len(snap.Employees),
		Periods:   len(snap.Periods),
		Records:   len(snap.Records),
	}, nil
}
