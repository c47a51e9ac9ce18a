package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shiftboard/internal/service"
	"shiftboard/pkg/response"
)

// EmployeeHandler 员工目录 HTTP 处理器
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// ListEmployees 列出当前组织的员工
// GET /api/v1/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}

	items, err := h.employeeSvc.List(c.Request.Context(), viewer)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, 11001, "员工目录暂不可用")
		return
	}

	response.List(c, items, len(items))
}
