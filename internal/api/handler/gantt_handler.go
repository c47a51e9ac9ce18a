package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shiftboard/internal/dto"
	"shiftboard/internal/service"
	"shiftboard/pkg/response"
)

// GanttHandler 甘特视图 HTTP 处理器
type GanttHandler struct {
	ganttSvc service.GanttService
}

// NewGanttHandler 创建 GanttHandler
func NewGanttHandler(ganttSvc service.GanttService) *GanttHandler {
	return &GanttHandler{ganttSvc: ganttSvc}
}

// GetGantt 渲染甘特视图（仅 day / week）
// GET /api/v1/gantt?mode=&date=
func (h *GanttHandler) GetGantt(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var q dto.GanttQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 15101, "参数校验失败")
		return
	}

	resp, err := h.ganttSvc.Get(c.Request.Context(), viewer, &q)
	if err != nil {
		h.handleGanttError(c, err)
		return
	}

	response.OK(c, resp)
}

// SetMode 切换甘特视图模式
// PUT /api/v1/gantt/mode
func (h *GanttHandler) SetMode(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var req dto.SetGanttModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15101, "参数校验失败")
		return
	}

	resp, err := h.ganttSvc.SetMode(c.Request.Context(), viewer, &req)
	if err != nil {
		h.handleGanttError(c, err)
		return
	}

	response.OK(c, resp)
}

// Navigate 甘特视图翻页
// POST /api/v1/gantt/navigate
func (h *GanttHandler) Navigate(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15101, "参数校验失败")
		return
	}

	resp, err := h.ganttSvc.Navigate(c.Request.Context(), viewer, &req)
	if err != nil {
		h.handleGanttError(c, err)
		return
	}

	response.OK(c, resp)
}

// Detail 员工某天的班次明细
// GET /api/v1/gantt/detail?employee_id=&date=
func (h *GanttHandler) Detail(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var q dto.GanttDetailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 15101, "employee_id 与 date 不能为空")
		return
	}

	resp, err := h.ganttSvc.Detail(c.Request.Context(), viewer, &q)
	if err != nil {
		h.handleGanttError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *GanttHandler) handleGanttError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidViewMode):
		response.BadRequest(c, 15102, err.Error())
	case errors.Is(err, service.ErrInvalidAction):
		response.BadRequest(c, 15103, err.Error())
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 15104, err.Error())
	default:
		response.InternalError(c)
	}
}
