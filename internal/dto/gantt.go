package dto

// ── 甘特视图 DTO ──

// GanttQuery 甘特查询参数（mode 仅 day / week）
type GanttQuery struct {
	Mode string `form:"mode" binding:"omitempty,oneof=day week"`
	Date string `form:"date"`
}

// SetGanttModeRequest 切换甘特模式
type SetGanttModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=day week"`
}

// GanttDetailQuery 单元格明细查询
type GanttDetailQuery struct {
	EmployeeID string `form:"employee_id" binding:"required,max=64"`
	Date       string `form:"date"        binding:"required"`
}

// GanttColumnResponse 甘特列
type GanttColumnResponse struct {
	Date    string           `json:"date"`
	Weekday string           `json:"weekday"`
	Holiday *HolidayResponse `json:"holiday,omitempty"`
}

// GanttCellResponse 甘特单元格
type GanttCellResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// GanttRowResponse 甘特行
type GanttRowResponse struct {
	EmployeeID string              `json:"employee_id"`
	Name       string              `json:"name"`
	HasShifts  bool                `json:"has_shifts"`
	Total      int                 `json:"total"`
	Cells      []GanttCellResponse `json:"cells"`
}

// GanttResponse 甘特视图响应
type GanttResponse struct {
	Mode      string                `json:"mode"`
	Reference string                `json:"reference"`
	Columns   []GanttColumnResponse `json:"columns"`
	Rows      []GanttRowResponse    `json:"rows"`
	Notices   []string              `json:"notices,omitempty"`
}

// ShiftSpanResponse 明细中的班次时段
type ShiftSpanResponse struct {
	ShiftID   string `json:"shift_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// GanttDetailResponse 甘特单元格明细
type GanttDetailResponse struct {
	EmployeeID   string              `json:"employee_id"`
	EmployeeName string              `json:"employee_name"`
	Date         string              `json:"date"`
	Shifts       []ShiftSpanResponse `json:"shifts"`
	NoShifts     bool                `json:"no_shifts"`
	Message      string              `json:"message,omitempty"`
	HolidayName  string              `json:"holiday_name,omitempty"`
	Notices      []string            `json:"notices,omitempty"`
}
