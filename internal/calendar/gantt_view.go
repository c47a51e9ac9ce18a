package calendar

import (
	"time"

	"shiftboard/internal/model"
)

// NoShiftsLabel 甘特单元格无班次时的明细提示
const NoShiftsLabel = "No shifts scheduled"

// GanttColumn 甘特图列（一天）
type GanttColumn struct {
	Date    time.Time      `json:"date"`
	Holiday *model.Holiday `json:"holiday,omitempty"`
}

// GanttCell 员工在某天的班次
type GanttCell struct {
	Date   time.Time     `json:"date"`
	Count  int           `json:"count"`
	Shifts []model.Shift `json:"shifts"`
}

// GanttRow 甘特图行：每个员工一行，无班次的员工同样出现
type GanttRow struct {
	Employee  model.Employee `json:"employee"`
	Cells     []GanttCell    `json:"cells"`
	Total     int            `json:"total"`
	HasShifts bool           `json:"has_shifts"`
}

// Chart 甘特图渲染结果
type Chart struct {
	Mode      ViewMode      `json:"mode"`
	Reference time.Time     `json:"reference"`
	Columns   []GanttColumn `json:"columns"`
	Rows      []GanttRow    `json:"rows"`
}

// ShiftSpan 明细中的单个班次时段
type ShiftSpan struct {
	ShiftID   string `json:"shift_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// CellDetail 甘特单元格明细
// 无班次时 NoShifts=true，若当天是节假日则附带节假日名称
type CellDetail struct {
	Employee    model.Employee `json:"employee"`
	Date        time.Time      `json:"date"`
	Shifts      []ShiftSpan    `json:"shifts"`
	NoShifts    bool           `json:"no_shifts"`
	Message     string         `json:"message,omitempty"`
	HolidayName string         `json:"holiday_name,omitempty"`
}

// GanttView 员工 × 日期 甘特视图，仅支持 day / week
type GanttView struct {
	nav navigator
}

// NewGanttView 从持久化状态恢复甘特视图；无效模式回退为 week
func NewGanttView(state ViewState, now func() time.Time, loc *time.Location) *GanttView {
	allowed := func(m ViewMode) bool { return m == ModeDay || m == ModeWeek }
	return &GanttView{nav: newNavigator(state, now, loc, ModeWeek, allowed)}
}

// State 当前视图状态（用于持久化）
func (g *GanttView) State() ViewState { return g.nav.state }

// SetMode 切换模式，仅支持日/周
func (g *GanttView) SetMode(mode ViewMode) error { return g.nav.setMode(mode) }

// Previous 后退一个周期
func (g *GanttView) Previous() { g.nav.step(-1) }

// Next 前进一个周期
func (g *GanttView) Next() { g.nav.step(1) }

// Today 参考日期回到今天
func (g *GanttView) Today() { g.nav.today() }

// Window 当前模式下的列日期
func (g *GanttView) Window() []time.Time {
	return GenerateCells(g.nav.state.Reference, g.nav.state.Mode)
}

// Render 为员工目录中的每个员工生成一行
func (g *GanttView) Render(data Data) Chart {
	st := g.nav.state
	days := g.Window()
	holidays := NewHolidayIndex(data.Holidays)
	shifts := NewShiftIndex(data.Shifts, data.Employees)

	chart := Chart{
		Mode:      st.Mode,
		Reference: st.Reference,
		Columns:   make([]GanttColumn, 0, len(days)),
		Rows:      make([]GanttRow, 0, len(data.Employees)),
	}
	for _, day := range days {
		chart.Columns = append(chart.Columns, GanttColumn{Date: day, Holiday: holidays.overlay(day)})
	}

	byDay := make([]map[string][]model.Shift, len(days))
	for i, day := range days {
		byDay[i] = shifts.ShiftsByEmployeeOn(day)
	}

	for _, e := range data.Employees {
		row := GanttRow{Employee: e, Cells: make([]GanttCell, 0, len(days))}
		for i, day := range days {
			list := byDay[i][e.EmployeeID]
			row.Cells = append(row.Cells, GanttCell{Date: day, Count: len(list), Shifts: list})
			row.Total += len(list)
		}
		row.HasShifts = row.Total > 0
		chart.Rows = append(chart.Rows, row)
	}
	return chart
}

// Detail 某员工某天的班次明细
func (g *GanttView) Detail(data Data, employeeID string, date time.Time) CellDetail {
	idx := NewShiftIndex(data.Shifts, data.Employees)
	detail := CellDetail{Employee: idx.Employee(employeeID), Date: date}
	if !date.IsZero() {
		detail.Date = Midday(date)
	}

	for _, s := range idx.ShiftsByEmployeeOn(date)[employeeID] {
		detail.Shifts = append(detail.Shifts, ShiftSpan{ShiftID: s.ShiftID, StartTime: s.StartTime, EndTime: s.EndTime})
	}
	if h, ok := NewHolidayIndex(data.Holidays).HolidayFor(date); ok {
		detail.HolidayName = h.Name
	}
	if len(detail.Shifts) == 0 {
		detail.NoShifts = true
		detail.Message = NoShiftsLabel
	}
	return detail
}
