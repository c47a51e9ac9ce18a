package dto

// ── 日历视图 DTO ──

// CalendarQuery 日历查询参数：mode / date 非空时覆盖并保存当前视图状态
type CalendarQuery struct {
	Mode string `form:"mode" binding:"omitempty,viewmode"`
	Date string `form:"date"`
}

// SetViewModeRequest 切换视图模式
type SetViewModeRequest struct {
	Mode string `json:"mode" binding:"required,viewmode"`
}

// NavigateRequest 视图导航
type NavigateRequest struct {
	Action string `json:"action" binding:"required,oneof=previous next today"`
}

// DropRequest 拖拽员工到日历单元格
type DropRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=64"`
	Date       string `json:"date"        binding:"required"`
	StartTime  string `json:"start_time"  binding:"omitempty,clock"`
	EndTime    string `json:"end_time"    binding:"omitempty,clock"`
}

// AssigneeResponse 单元格中的员工徽标
type AssigneeResponse struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	Badge      string          `json:"badge"`
	Shifts     []ShiftResponse `json:"shifts"`
}

// CalendarCellResponse 日历单元格
type CalendarCellResponse struct {
	Date            string             `json:"date"`
	IsCurrentPeriod bool               `json:"is_current_period"`
	IsToday         bool               `json:"is_today"`
	Holiday         *HolidayResponse   `json:"holiday,omitempty"`
	Assignees       []AssigneeResponse `json:"assignees"`
	DropTarget      bool               `json:"drop_target"`
}

// AgendaEntryResponse 议程条目
type AgendaEntryResponse struct {
	Shift   ShiftResponse    `json:"shift"`
	Holiday *HolidayResponse `json:"holiday,omitempty"`
}

// CalendarResponse 日历视图响应
// Notices 为非致命的数据加载提示，视图仍正常渲染
type CalendarResponse struct {
	Mode      string                 `json:"mode"`
	Reference string                 `json:"reference"`
	Cells     []CalendarCellResponse `json:"cells,omitempty"`
	Agenda    []AgendaEntryResponse  `json:"agenda,omitempty"`
	Notices   []string               `json:"notices,omitempty"`
}
