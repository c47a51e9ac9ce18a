package dto

// ── 班次模块 DTO ──

// AssignShiftRequest 分配班次请求
// StartTime / EndTime 为空时使用配置中的默认班次时间
type AssignShiftRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=64"`
	Date       string `json:"date"        binding:"required"`
	StartTime  string `json:"start_time"  binding:"omitempty,clock"`
	EndTime    string `json:"end_time"    binding:"omitempty,clock"`
}

// EditShiftRequest 编辑班次请求（字段均可选，班次 ID 不变）
type EditShiftRequest struct {
	EmployeeID *string `json:"employee_id" binding:"omitempty,min=1,max=64"`
	Date       *string `json:"date"`
	StartTime  *string `json:"start_time"  binding:"omitempty,clock"`
	EndTime    *string `json:"end_time"    binding:"omitempty,clock"`
}

// RemoveShiftsRequest 删除某员工某日全部班次
type RemoveShiftsRequest struct {
	EmployeeID string `form:"employee_id" binding:"required,max=64"`
	Date       string `form:"date"        binding:"required"`
}

// ShiftResponse 班次信息响应
type ShiftResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// RemoveShiftsResponse 批量删除结果
type RemoveShiftsResponse struct {
	Removed int `json:"removed"`
}
