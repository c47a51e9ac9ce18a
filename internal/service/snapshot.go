package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"shiftboard/internal/calendar"
	"shiftboard/internal/dto"
	"shiftboard/internal/model"
	"shiftboard/internal/repository"
)

// Viewer 当前请求的调用者（组织 + 用户）
type Viewer struct {
	OrganizationID string
	UserID         string
}

// ── 数据加载 ──

const (
	noticeEmployeesUnavailable = "员工目录暂不可用，员工名称可能显示为 Unknown"
	noticeShiftsUnavailable    = "班次数据暂不可用，当前视图不含排班"
	noticeHolidaysUnavailable  = "节假日数据暂不可用，当前视图不含节假日标记"
)

// snapshotLoader 读取渲染视图所需的员工 / 班次 / 节假日集合
// 任一集合加载失败都不中断渲染，只追加一条提示
type snapshotLoader struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

func (l *snapshotLoader) load(ctx context.Context, orgID string) (calendar.Data, []string) {
	var (
		data    calendar.Data
		notices []string
	)

	employees, err := l.repo.Employee.ListByOrganization(ctx, orgID)
	if err != nil {
		l.logger.Warn("加载员工目录失败", zap.String("org", orgID), zap.Error(err))
		notices = append(notices, noticeEmployeesUnavailable)
	}
	data.Employees = employees

	shifts, err := l.repo.Shift.ListByOrganization(ctx, orgID)
	if err != nil {
		l.logger.Warn("加载班次失败", zap.String("org", orgID), zap.Error(err))
		notices = append(notices, noticeShiftsUnavailable)
	}
	data.Shifts = l.localizeShifts(shifts)

	holidays, err := l.repo.Holiday.ListByOrganization(ctx, orgID)
	if err != nil {
		l.logger.Warn("加载节假日失败", zap.String("org", orgID), zap.Error(err))
		notices = append(notices, noticeHolidaysUnavailable)
	}
	for i := range holidays {
		holidays[i].Date = localDay(holidays[i].Date, l.loc)
	}
	data.Holidays = holidays

	return data, notices
}

func (l *snapshotLoader) localizeShifts(shifts []model.Shift) []model.Shift {
	for i := range shifts {
		shifts[i].Date = localDay(shifts[i].Date, l.loc)
	}
	return shifts
}

// ── 日期换算 ──

// localDay 把存储层读回的 DATE（UTC 零点）换算为排班时区当天正午
func localDay(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, loc)
}

// storageDay 以 UTC 零点写入 DATE 列，避免驱动按时区偏移换日
func storageDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ── DTO 转换 ──

func toShiftResponse(s *model.Shift, name string) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:           s.ShiftID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: name,
		Date:         calendar.DayKey(s.Date),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
	}
}

func toHolidayResponse(h *model.Holiday) *dto.HolidayResponse {
	if h == nil {
		return nil
	}
	return &dto.HolidayResponse{
		ID:          h.HolidayID,
		Date:        calendar.DayKey(h.Date),
		Name:        h.Name,
		Type:        h.Type,
		Description: h.Description,
		Version:     h.Version,
	}
}

func toCalendarResponse(layout calendar.Layout, today time.Time, notices []string) *dto.CalendarResponse {
	resp := &dto.CalendarResponse{
		Mode:      string(layout.Mode),
		Reference: calendar.DayKey(layout.Reference),
		Notices:   notices,
	}

	for _, cell := range layout.Cells {
		out := dto.CalendarCellResponse{
			Date:            calendar.DayKey(cell.Date),
			IsCurrentPeriod: cell.IsCurrentPeriod,
			IsToday:         calendar.SameDay(cell.Date, today),
			Holiday:         toHolidayResponse(cell.Holiday),
			Assignees:       make([]dto.AssigneeResponse, 0, len(cell.Assignees)),
			DropTarget:      cell.DropTarget,
		}
		for _, a := range cell.Assignees {
			shifts := make([]dto.ShiftResponse, 0, len(a.Shifts))
			for i := range a.Shifts {
				shifts = append(shifts, toShiftResponse(&a.Shifts[i], a.Employee.Name))
			}
			out.Assignees = append(out.Assignees, dto.AssigneeResponse{
				EmployeeID: a.Employee.EmployeeID,
				Name:       a.Employee.Name,
				Count:      a.Count,
				Badge:      strconv.Itoa(a.Count),
				Shifts:     shifts,
			})
		}
		resp.Cells = append(resp.Cells, out)
	}

	for _, e := range layout.Agenda {
		resp.Agenda = append(resp.Agenda, dto.AgendaEntryResponse{
			Shift:   toShiftResponse(&e.Shift, e.Employee.Name),
			Holiday: toHolidayResponse(e.Holiday),
		})
	}
	return resp
}

func toGanttResponse(chart calendar.Chart, notices []string) *dto.GanttResponse {
	resp := &dto.GanttResponse{
		Mode:      string(chart.Mode),
		Reference: calendar.DayKey(chart.Reference),
		Columns:   make([]dto.GanttColumnResponse, 0, len(chart.Columns)),
		Rows:      make([]dto.GanttRowResponse, 0, len(chart.Rows)),
		Notices:   notices,
	}
	for _, col := range chart.Columns {
		resp.Columns = append(resp.Columns, dto.GanttColumnResponse{
			Date:    calendar.DayKey(col.Date),
			Weekday: col.Date.Weekday().String()[:3],
			Holiday: toHolidayResponse(col.Holiday),
		})
	}
	for _, row := range chart.Rows {
		out := dto.GanttRowResponse{
			EmployeeID: row.Employee.EmployeeID,
			Name:       row.Employee.Name,
			HasShifts:  row.HasShifts,
			Total:      row.Total,
			Cells:      make([]dto.GanttCellResponse, 0, len(row.Cells)),
		}
		for _, c := range row.Cells {
			out.Cells = append(out.Cells, dto.GanttCellResponse{Date: calendar.DayKey(c.Date), Count: c.Count})
		}
		resp.Rows = append(resp.Rows, out)
	}
	return resp
}
