package calendar

import (
	"sort"
	"time"

	"shiftboard/internal/model"
)

// Data 渲染所需的当前集合快照
type Data struct {
	Employees []model.Employee
	Shifts    []model.Shift
	Holidays  []model.Holiday
}

// Assignee 单元格中某员工当天的班次汇总（Count 即徽标数字）
type Assignee struct {
	Employee model.Employee `json:"employee"`
	Count    int            `json:"count"`
	Shifts   []model.Shift  `json:"shifts"`
}

// Cell 日历网格单元格
type Cell struct {
	Date            time.Time      `json:"date"`
	IsCurrentPeriod bool           `json:"is_current_period"`
	Assignees       []Assignee     `json:"assignees"`
	Holiday         *model.Holiday `json:"holiday,omitempty"`
	DropTarget      bool           `json:"drop_target"`
}

// AgendaEntry 议程列表条目
type AgendaEntry struct {
	Shift    model.Shift    `json:"shift"`
	Employee model.Employee `json:"employee"`
	Holiday  *model.Holiday `json:"holiday,omitempty"`
}

// Layout 日历视图渲染结果：网格模式填 Cells，agenda 模式填 Agenda
type Layout struct {
	Mode      ViewMode      `json:"mode"`
	Reference time.Time     `json:"reference"`
	Cells     []Cell        `json:"cells,omitempty"`
	Agenda    []AgendaEntry `json:"agenda,omitempty"`
}

// CalendarView 日历视图，支持 day / week / month / agenda 四种模式
type CalendarView struct {
	nav navigator
}

// NewCalendarView 从持久化状态恢复视图；无效模式回退为 month，缺失参考日期取今天
func NewCalendarView(state ViewState, now func() time.Time, loc *time.Location) *CalendarView {
	allowed := func(m ViewMode) bool {
		_, ok := ParseViewMode(string(m))
		return ok
	}
	return &CalendarView{nav: newNavigator(state, now, loc, ModeMonth, allowed)}
}

// State 当前视图状态（用于持久化）
func (v *CalendarView) State() ViewState { return v.nav.state }

// SetMode 切换模式，参考日期不变
func (v *CalendarView) SetMode(mode ViewMode) error { return v.nav.setMode(mode) }

// Previous 后退一个周期
func (v *CalendarView) Previous() { v.nav.step(-1) }

// Next 前进一个周期
func (v *CalendarView) Next() { v.nav.step(1) }

// Today 参考日期回到今天
func (v *CalendarView) Today() { v.nav.today() }

// Render 基于当前集合计算视图布局
func (v *CalendarView) Render(data Data) Layout {
	st := v.nav.state
	layout := Layout{Mode: st.Mode, Reference: st.Reference}

	holidays := NewHolidayIndex(data.Holidays)
	shifts := NewShiftIndex(data.Shifts, data.Employees)

	if st.Mode == ModeAgenda {
		layout.Agenda = buildAgenda(data.Shifts, shifts, holidays)
		return layout
	}

	days := GenerateCells(st.Reference, st.Mode)
	layout.Cells = make([]Cell, 0, len(days))
	for _, day := range days {
		assignees := assigneesOn(day, shifts)
		overlay := holidays.overlay(day)
		layout.Cells = append(layout.Cells, Cell{
			Date:            day,
			IsCurrentPeriod: inCurrentPeriod(day, st.Reference, st.Mode),
			Assignees:       assignees,
			Holiday:         overlay,
			// 无人值班且非节假日的空白单元格才显示放置提示，放置本身不受限制
			DropTarget: len(assignees) == 0 && overlay == nil,
		})
	}
	return layout
}

// 月视图中仅参考月内的日期属于当前周期；日/周视图全部属于当前周期
func inCurrentPeriod(day, ref time.Time, mode ViewMode) bool {
	if mode != ModeMonth {
		return true
	}
	return day.Year() == ref.Year() && day.Month() == ref.Month()
}

func assigneesOn(day time.Time, idx *ShiftIndex) []Assignee {
	grouped := idx.ShiftsByEmployeeOn(day)
	employees := idx.EmployeesOn(day)
	result := make([]Assignee, 0, len(employees))
	for _, e := range employees {
		list := grouped[e.EmployeeID]
		result = append(result, Assignee{Employee: e, Count: len(list), Shifts: list})
	}
	return result
}

// 议程：全部有效班次按日期升序（同日按开始时间），保持稳定排序
func buildAgenda(all []model.Shift, idx *ShiftIndex, holidays *HolidayIndex) []AgendaEntry {
	valid := make([]model.Shift, 0, len(all))
	for _, s := range all {
		if !s.Date.IsZero() {
			valid = append(valid, s)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		ki, kj := DayKey(valid[i].Date), DayKey(valid[j].Date)
		if ki != kj {
			return ki < kj
		}
		return valid[i].StartTime < valid[j].StartTime
	})

	entries := make([]AgendaEntry, 0, len(valid))
	for _, s := range valid {
		entries = append(entries, AgendaEntry{
			Shift:    s,
			Employee: idx.Employee(s.EmployeeID),
			Holiday:  holidays.overlay(s.Date),
		})
	}
	return entries
}
