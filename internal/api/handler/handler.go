package handler

import "shiftboard/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Employee *EmployeeHandler
	Shift    *ShiftHandler
	Holiday  *HolidayHandler
	Calendar *CalendarHandler
	Gantt    *GanttHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Employee: NewEmployeeHandler(svc.Employee),
		Shift:    NewShiftHandler(svc.Assignment),
		Holiday:  NewHolidayHandler(svc.Holiday),
		Calendar: NewCalendarHandler(svc.Calendar),
		Gantt:    NewGanttHandler(svc.Gantt),
		Export:   NewExportHandler(svc.Export),
	}
}
