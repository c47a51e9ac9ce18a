package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shiftboard/internal/dto"
	"shiftboard/internal/service"
	"shiftboard/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportCalendar 导出日历与甘特为 Excel
// GET /api/v1/export/calendar?mode=&date=
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var q dto.ExportCalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 16001, "mode 仅支持 day / week / month")
		return
	}

	buf, filename, err := h.exportSvc.ExportCalendar(c.Request.Context(), viewer, &q)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, filename, contentTypeXLSX, buf.Bytes())
}

// ExportShiftsICS 导出员工班次为 ICS
// GET /api/v1/export/shifts.ics?employee_id=
func (h *ExportHandler) ExportShiftsICS(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var q dto.ExportShiftsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 16001, "employee_id 不能为空")
		return
	}

	body, filename, err := h.exportSvc.ExportShiftsICS(c.Request.Context(), viewer, q.EmployeeID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, filename, contentTypeICS, body)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidViewMode), errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 16002, err.Error())
	case errors.Is(err, service.ErrEmptyEmployee):
		response.BadRequest(c, 16003, err.Error())
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
