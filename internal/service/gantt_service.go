package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shiftboard/internal/calendar"
	"shiftboard/internal/dto"
	"shiftboard/internal/repository"
)

const ganttViewKey = "gantt"

// GanttService 甘特视图业务接口（状态与日历视图互不影响）
type GanttService interface {
	Get(ctx context.Context, v Viewer, q *dto.GanttQuery) (*dto.GanttResponse, error)
	SetMode(ctx context.Context, v Viewer, req *dto.SetGanttModeRequest) (*dto.GanttResponse, error)
	Navigate(ctx context.Context, v Viewer, req *dto.NavigateRequest) (*dto.GanttResponse, error)
	Detail(ctx context.Context, v Viewer, q *dto.GanttDetailQuery) (*dto.GanttDetailResponse, error)
}

type ganttService struct {
	loader snapshotLoader
	states ViewStateStore
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewGanttService 创建 GanttService 实例
func NewGanttService(repo *repository.Repository, states ViewStateStore, loc *time.Location, logger *zap.Logger) GanttService {
	return &ganttService{
		loader: snapshotLoader{repo: repo, loc: loc, logger: logger},
		states: states,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
}

func (s *ganttService) Get(ctx context.Context, v Viewer, q *dto.GanttQuery) (*dto.GanttResponse, error) {
	view := s.restore(ctx, v)

	changed := false
	if q.Mode != "" {
		mode, ok := calendar.ParseViewMode(q.Mode)
		if !ok || view.SetMode(mode) != nil {
			return nil, ErrInvalidViewMode
		}
		changed = true
	}
	if q.Date != "" {
		date, ok := calendar.ParseDate(q.Date, s.loc)
		if !ok {
			return nil, ErrInvalidDate
		}
		view = calendar.NewGanttView(calendar.ViewState{Mode: view.State().Mode, Reference: date}, s.now, s.loc)
		changed = true
	}
	if changed {
		s.persist(ctx, v, view)
	}
	return s.render(ctx, v, view), nil
}

func (s *ganttService) SetMode(ctx context.Context, v Viewer, req *dto.SetGanttModeRequest) (*dto.GanttResponse, error) {
	mode, ok := calendar.ParseViewMode(req.Mode)
	if !ok {
		return nil, ErrInvalidViewMode
	}
	view := s.restore(ctx, v)
	if err := view.SetMode(mode); err != nil {
		return nil, ErrInvalidViewMode
	}
	s.persist(ctx, v, view)
	return s.render(ctx, v, view), nil
}

func (s *ganttService) Navigate(ctx context.Context, v Viewer, req *dto.NavigateRequest) (*dto.GanttResponse, error) {
	view := s.restore(ctx, v)
	switch req.Action {
	case "previous":
		view.Previous()
	case "next":
		view.Next()
	case "today":
		view.Today()
	default:
		return nil, ErrInvalidAction
	}
	s.persist(ctx, v, view)
	return s.render(ctx, v, view), nil
}

// Detail 某员工某天的班次明细；无班次时给出提示并附带节假日名称
func (s *ganttService) Detail(ctx context.Context, v Viewer, q *dto.GanttDetailQuery) (*dto.GanttDetailResponse, error) {
	date, ok := calendar.ParseDate(q.Date, s.loc)
	if !ok {
		return nil, ErrInvalidDate
	}
	data, notices := s.loader.load(ctx, v.OrganizationID)
	d := calendar.NewGanttView(calendar.ViewState{Reference: date}, s.now, s.loc).Detail(data, q.EmployeeID, date)

	resp := &dto.GanttDetailResponse{
		EmployeeID:   d.Employee.EmployeeID,
		EmployeeName: d.Employee.Name,
		Date:         calendar.DayKey(d.Date),
		Shifts:       make([]dto.ShiftSpanResponse, 0, len(d.Shifts)),
		NoShifts:     d.NoShifts,
		Message:      d.Message,
		HolidayName:  d.HolidayName,
		Notices:      notices,
	}
	for _, span := range d.Shifts {
		resp.Shifts = append(resp.Shifts, dto.ShiftSpanResponse{ShiftID: span.ShiftID, StartTime: span.StartTime, EndTime: span.EndTime})
	}
	return resp, nil
}

// ── 内部方法 ──

func (s *ganttService) restore(ctx context.Context, v Viewer) *calendar.GanttView {
	st, _, err := s.states.Load(ctx, viewStateKey(ganttViewKey, v))
	if err != nil {
		s.logger.Warn("读取甘特视图状态失败，使用默认视图", zap.String("user_id", v.UserID), zap.Error(err))
	}
	return calendar.NewGanttView(st, s.now, s.loc)
}

func (s *ganttService) persist(ctx context.Context, v Viewer, view *calendar.GanttView) {
	if err := s.states.Save(ctx, viewStateKey(ganttViewKey, v), view.State()); err != nil {
		s.logger.Warn("保存甘特视图状态失败", zap.String("user_id", v.UserID), zap.Error(err))
	}
}

func (s *ganttService) render(ctx context.Context, v Viewer, view *calendar.GanttView) *dto.GanttResponse {
	data, notices := s.loader.load(ctx, v.OrganizationID)
	return toGanttResponse(view.Render(data), notices)
}
