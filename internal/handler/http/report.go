package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/report"
	"github.com/hmaq1985-lang/overtime-system/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID := queryID(r, "employee_id")
	periodID := queryID(r, "period_id")
	if employeeID == nil || periodID == nil {
		response.BadRequest(w, "employee_id and period_id are required", nil)
		return
	}

	result, err := h.reportService.Summary(r.Context(), *employeeID, *periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	employeeID := queryID(r, "employee_id")
	periodID := queryID(r, "period_id")
	if employeeID == nil || periodID == nil {
		response.BadRequest(w, "employee_id and period_id are required", nil)
		return
	}

	filename, data, err := h.reportService.Export(r.Context(), *employeeID, *periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
