package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"shiftboard/internal/calendar"
	"shiftboard/internal/dto"
	"shiftboard/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
//   - 日历与甘特导出为 Excel (.xlsx)，以 bytes.Buffer 返回，由 Handler 设置响应头
//   - 员工班次导出为 ICS，可被日历客户端订阅
type ExportService interface {
	ExportCalendar(ctx context.Context, v Viewer, q *dto.ExportCalendarQuery) (*bytes.Buffer, string, error)
	ExportShiftsICS(ctx context.Context, v Viewer, employeeID string) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	loader snapshotLoader
	states ViewStateStore
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, states ViewStateStore, loc *time.Location, logger *zap.Logger) ExportService {
	return &exportService{
		repo:   repo,
		loader: snapshotLoader{repo: repo, loc: loc, logger: logger},
		states: states,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
}

var weekdayNames = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// ═══════════════════════════════════════════════════════════
// ExportCalendar：导出日历 + 甘特为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "日历"：按当前模式的网格（月视图 6×7），单元格内为日期、节假日与 "姓名 ×次数"
//   - Sheet "甘特"：参考日期所在周，员工 × 日期，单元格为班次时段
//
// mode / date 缺省时沿用调用者当前日历视图状态；agenda 模式按月导出。

func (s *exportService) ExportCalendar(ctx context.Context, v Viewer, q *dto.ExportCalendarQuery) (*bytes.Buffer, string, error) {
	st, _, err := s.states.Load(ctx, viewStateKey(calendarViewKey, v))
	if err != nil {
		s.logger.Warn("读取日历视图状态失败，使用默认视图", zap.Error(err))
	}
	if q.Mode != "" {
		mode, ok := calendar.ParseViewMode(q.Mode)
		if !ok || !mode.IsGrid() {
			return nil, "", ErrInvalidViewMode
		}
		st.Mode = mode
	}
	if q.Date != "" {
		date, ok := calendar.ParseDate(q.Date, s.loc)
		if !ok {
			return nil, "", ErrInvalidDate
		}
		st.Reference = date
		st.AnchorDay = 0
	}
	if st.Mode == calendar.ModeAgenda {
		st.Mode = calendar.ModeMonth
	}

	view := calendar.NewCalendarView(st, s.now, s.loc)
	data, notices := s.loader.load(ctx, v.OrganizationID)
	layout := view.Render(data)
	chart := calendar.NewGanttView(calendar.ViewState{Mode: calendar.ModeWeek, Reference: layout.Reference}, s.now, s.loc).Render(data)

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	holidayStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FCE4D6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})

	// ── Sheet 1: 日历 ──
	calSheet := "日历"
	idx, _ := f.NewSheet(calSheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(calSheet, "A1", fmt.Sprintf("排班日历 %s (%s)", calendar.DayKey(layout.Reference), layout.Mode))
	f.MergeCell(calSheet, "A1", "G1")
	f.SetCellStyle(calSheet, "A1", "G1", headerStyle)
	f.SetColWidth(calSheet, "A", "G", 22)

	for i, name := range weekdayNames {
		f.SetCellValue(calSheet, cell(colName(i), 2), name)
	}
	f.SetCellStyle(calSheet, "A2", "G2", headerStyle)

	for i, c := range layout.Cells {
		col := int(c.Date.Weekday())
		row := 3 + i/7
		if layout.Mode != calendar.ModeMonth && layout.Mode != calendar.ModeWeek {
			row = 3
		}
		ref := cell(colName(col), row)
		f.SetCellValue(calSheet, ref, calendarCellText(c))
		style := cellStyle
		if c.Holiday != nil {
			style = holidayStyle
		}
		f.SetCellStyle(calSheet, ref, ref, style)
		f.SetRowHeight(calSheet, row, 80)
	}

	if len(notices) > 0 {
		last := 3 + (len(layout.Cells)+6)/7 + 1
		f.SetCellValue(calSheet, cell("A", last), strings.Join(notices, "；"))
	}

	// ── Sheet 2: 甘特 ──
	ganttSheet := "甘特"
	f.NewSheet(ganttSheet)
	f.SetColWidth(ganttSheet, "A", "A", 18)
	f.SetColWidth(ganttSheet, "B", colName(len(chart.Columns)), 16)

	f.SetCellValue(ganttSheet, "A1", "员工")
	for i, col := range chart.Columns {
		header := fmt.Sprintf("%s %s", weekdayNames[col.Date.Weekday()], col.Date.Format("01-02"))
		if col.Holiday != nil {
			header += "\n" + col.Holiday.Name
		}
		f.SetCellValue(ganttSheet, cell(colName(i+1), 1), header)
	}
	f.SetCellStyle(ganttSheet, "A1", cell(colName(len(chart.Columns)), 1), headerStyle)

	for r, row := range chart.Rows {
		excelRow := r + 2
		f.SetCellValue(ganttSheet, cell("A", excelRow), row.Employee.Name)
		for i, gc := range row.Cells {
			spans := make([]string, 0, len(gc.Shifts))
			for _, sh := range gc.Shifts {
				spans = append(spans, sh.StartTime+"-"+sh.EndTime)
			}
			text := "-"
			if len(spans) > 0 {
				text = strings.Join(spans, "\n")
			}
			f.SetCellValue(ganttSheet, cell(colName(i+1), excelRow), text)
		}
		f.SetCellStyle(ganttSheet, cell("B", excelRow), cell(colName(len(row.Cells)), excelRow), cellStyle)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("排班日历_%s_%s.xlsx", layout.Mode, calendar.DayKey(layout.Reference))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportShiftsICS：导出员工班次为 ICS
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportShiftsICS(ctx context.Context, v Viewer, employeeID string) ([]byte, string, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, "", ErrEmptyEmployee
	}
	shifts, err := s.repo.Shift.ListByEmployee(ctx, v.OrganizationID, employeeID)
	if err != nil {
		s.logger.Error("查询员工班次失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, "", err
	}

	name := calendar.UnknownEmployeeName
	if e, err := s.repo.Employee.GetByID(ctx, v.OrganizationID, employeeID); err == nil {
		name = e.Name
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//shiftboard//shifts//ZH")
	cal.SetXWRCalName(name + " 排班")

	stamp := s.now().UTC()
	for i := range shifts {
		sh := shifts[i]
		start, end, ok := shiftSpan(localDay(sh.Date, s.loc), sh.StartTime, sh.EndTime)
		if !ok {
			continue
		}
		evt := cal.AddEvent(sh.ShiftID + "@shiftboard")
		evt.SetDtStampTime(stamp)
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(fmt.Sprintf("%s 值班", name))
		evt.SetDescription(fmt.Sprintf("%s %s-%s", calendar.DayKey(start), sh.StartTime, sh.EndTime))
	}

	filename := fmt.Sprintf("shifts_%s.ics", employeeID)
	return []byte(cal.Serialize()), filename, nil
}

// ── 辅助函数 ──

// shiftSpan 将日期与 HH:MM 组合为起止时刻；结束不晚于开始时视为跨夜班
func shiftSpan(day time.Time, startClock, endClock string) (time.Time, time.Time, bool) {
	st, err1 := time.Parse("15:04", startClock)
	et, err2 := time.Parse("15:04", endClock)
	if err1 != nil || err2 != nil || day.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	y, m, d := day.Date()
	start := time.Date(y, m, d, st.Hour(), st.Minute(), 0, 0, day.Location())
	end := time.Date(y, m, d, et.Hour(), et.Minute(), 0, 0, day.Location())
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}

func calendarCellText(c calendar.Cell) string {
	lines := []string{c.Date.Format("01-02")}
	if c.Holiday != nil {
		lines = append(lines, "["+c.Holiday.Name+"]")
	}
	for _, a := range c.Assignees {
		lines = append(lines, fmt.Sprintf("%s ×%d", a.Employee.Name, a.Count))
	}
	return strings.Join(lines, "\n")
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
