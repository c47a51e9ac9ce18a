package dto

// ── 导出 DTO ──

// ExportCalendarQuery 导出 Excel 参数，缺省时沿用当前日历视图状态
type ExportCalendarQuery struct {
	Mode string `form:"mode" binding:"omitempty,oneof=day week month"`
	Date string `form:"date"`
}

// ExportShiftsQuery 导出员工班次 ICS
type ExportShiftsQuery struct {
	EmployeeID string `form:"employee_id" binding:"required,max=64"`
}
