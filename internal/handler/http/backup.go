package http

import (
	"net/http"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/backup"
	"github.com/hmaq1985-lang/overtime-system/internal/handler/http/response"
)

type BackupHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
}

type backupHandlerImpl struct {
	backupService backup.BackupService
}

func NewBackupHandler(backupService backup.BackupService) BackupHandler {
	return &backupHandlerImpl{backupService: backupService}
}

func (h *backupHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	result, err := h.backupService.Take(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Backup saved", result)
}
