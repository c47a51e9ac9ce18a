package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shiftboard/internal/dto"
	"shiftboard/internal/service"
	"shiftboard/pkg/response"
)

// ShiftHandler 班次分配 HTTP 处理器
type ShiftHandler struct {
	assignmentSvc service.AssignmentService
}

// NewShiftHandler 创建 ShiftHandler
func NewShiftHandler(assignmentSvc service.AssignmentService) *ShiftHandler {
	return &ShiftHandler{assignmentSvc: assignmentSvc}
}

// ListShifts 列出当前组织全部班次
// GET /api/v1/shifts
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	items, err := h.assignmentSvc.List(c.Request.Context(), viewer)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.List(c, items, len(items))
}

// AssignShift 为员工分配一个班次
// POST /api/v1/shifts
func (h *ShiftHandler) AssignShift(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var req dto.AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "参数校验失败")
		return
	}

	shift, err := h.assignmentSvc.Assign(c.Request.Context(), viewer, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.Created(c, shift)
}

// EditShift 修改班次
// PUT /api/v1/shifts/:id
func (h *ShiftHandler) EditShift(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "班次ID不能为空")
		return
	}

	var req dto.EditShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "参数校验失败")
		return
	}

	shift, err := h.assignmentSvc.Edit(c.Request.Context(), viewer, id, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, shift)
}

// RemoveShift 删除单个班次，不存在时同样返回成功
// DELETE /api/v1/shifts/:id
func (h *ShiftHandler) RemoveShift(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	if err := h.assignmentSvc.Remove(c.Request.Context(), viewer, c.Param("id")); err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, nil)
}

// RemoveShiftsForEmployeeOnDate 删除某员工某天的全部班次
// DELETE /api/v1/shifts?employee_id=&date=
func (h *ShiftHandler) RemoveShiftsForEmployeeOnDate(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	var req dto.RemoveShiftsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 12001, "employee_id 与 date 不能为空")
		return
	}

	result, err := h.assignmentSvc.RemoveAllForEmployeeOnDate(c.Request.Context(), viewer, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *ShiftHandler) handleShiftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 12002, err.Error())
	case errors.Is(err, service.ErrEmptyEmployee):
		response.BadRequest(c, 12003, err.Error())
	case errors.Is(err, service.ErrInvalidShiftClock):
		response.BadRequest(c, 12004, err.Error())
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 12101, err.Error())
	default:
		response.InternalError(c)
	}
}
