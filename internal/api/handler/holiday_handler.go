package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shiftboard/internal/dto"
	"shiftboard/internal/service"
	"shiftboard/pkg/response"
)

// HolidayHandler 节假日 HTTP 处理器
type HolidayHandler struct {
	holidaySvc service.HolidayService
}

// NewHolidayHandler 创建 HolidayHandler
func NewHolidayHandler(holidaySvc service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidaySvc: holidaySvc}
}

// ListHolidays 列出当前组织的节假日
// GET /api/v1/holidays
func (h *HolidayHandler) ListHolidays(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	items, err := h.holidaySvc.List(c.Request.Context(), viewer)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, 14004, "节假日数据暂不可用")
		return
	}

	response.List(c, items, len(items))
}

// ImportHolidays 导入节假日日历
// POST /api/v1/holidays/import
// 支持 multipart 上传 ICS 文件（字段 file），或 JSON {"url": "..."} 订阅地址
func (h *HolidayHandler) ImportHolidays(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	if file, _, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		resp, err := h.holidaySvc.ImportICS(c.Request.Context(), viewer, file)
		if err != nil {
			h.handleHolidayError(c, err)
			return
		}
		response.Created(c, resp)
		return
	}

	var req dto.ImportHolidaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "请上传 ICS 文件或提供 ICS URL")
		return
	}

	resp, err := h.holidaySvc.ImportFromURL(c.Request.Context(), viewer, &req)
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}
	response.Created(c, resp)
}

// UpdateHoliday 修改节假日（需携带读取时的 version）
// PUT /api/v1/holidays/:id
func (h *HolidayHandler) UpdateHoliday(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var req dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "参数校验失败")
		return
	}

	holiday, err := h.holidaySvc.Update(c.Request.Context(), viewer, c.Param("id"), &req)
	if err != nil {
		h.handleHolidayError(c, err)
		return
	}

	response.OK(c, holiday)
}

// DeleteHoliday 删除节假日
// DELETE /api/v1/holidays/:id
func (h *HolidayHandler) DeleteHoliday(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	if err := h.holidaySvc.Delete(c.Request.Context(), viewer, c.Param("id")); err != nil {
		h.handleHolidayError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *HolidayHandler) handleHolidayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHolidayImportFailed):
		response.BadRequest(c, 14002, err.Error())
	case errors.Is(err, service.ErrHolidayFetchFailed):
		response.Error(c, http.StatusBadGateway, 14003, err.Error())
	case errors.Is(err, service.ErrHolidayNotFound):
		response.NotFound(c, 14101, err.Error())
	case errors.Is(err, service.ErrHolidayConflict):
		response.Error(c, http.StatusConflict, 14102, err.Error())
	default:
		response.InternalError(c)
	}
}
