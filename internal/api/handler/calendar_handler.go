package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shiftboard/internal/dnd"
	"shiftboard/internal/dto"
	"shiftboard/internal/service"
	"shiftboard/pkg/response"
)

// CalendarHandler 日历视图 HTTP 处理器
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler 创建 CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// GetCalendar 渲染当前用户的日历视图
// GET /api/v1/calendar?mode=&date=
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var q dto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 15001, "参数校验失败")
		return
	}

	resp, err := h.calendarSvc.Get(c.Request.Context(), viewer, &q)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, resp)
}

// SetMode 切换视图模式
// PUT /api/v1/calendar/mode
func (h *CalendarHandler) SetMode(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var req dto.SetViewModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "参数校验失败")
		return
	}

	resp, err := h.calendarSvc.SetMode(c.Request.Context(), viewer, &req)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, resp)
}

// Navigate 上一周期 / 下一周期 / 回到今天
// POST /api/v1/calendar/navigate
func (h *CalendarHandler) Navigate(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "参数校验失败")
		return
	}

	resp, err := h.calendarSvc.Navigate(c.Request.Context(), viewer, &req)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, resp)
}

// Drop 把员工拖放到某天，生成一个默认时段的班次
// POST /api/v1/calendar/drop
func (h *CalendarHandler) Drop(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var req dto.DropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "参数校验失败")
		return
	}

	shift, err := h.calendarSvc.Drop(c.Request.Context(), viewer, &req)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.Created(c, shift)
}

func (h *CalendarHandler) handleCalendarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidViewMode):
		response.BadRequest(c, 15002, err.Error())
	case errors.Is(err, service.ErrInvalidAction):
		response.BadRequest(c, 15003, err.Error())
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 15004, err.Error())
	case errors.Is(err, service.ErrEmptyEmployee), errors.Is(err, dnd.ErrEmptyPayload):
		response.BadRequest(c, 15005, err.Error())
	case errors.Is(err, service.ErrInvalidShiftClock):
		response.BadRequest(c, 15006, err.Error())
	default:
		response.InternalError(c)
	}
}
