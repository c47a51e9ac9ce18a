package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"shiftboard/internal/calendar"
	"shiftboard/internal/dnd"
	"shiftboard/internal/dto"
	"shiftboard/internal/repository"
	"shiftboard/pkg/metrics"
)

// ── 视图模块业务错误 ──

var (
	ErrInvalidViewMode = errors.New("不支持的视图模式")
	ErrInvalidAction   = errors.New("不支持的导航操作")
)

const calendarViewKey = "calendar"

// CalendarService 日历视图业务接口
//
// 视图状态按用户持久化；每次请求都重新加载集合并完整渲染。
type CalendarService interface {
	Get(ctx context.Context, v Viewer, q *dto.CalendarQuery) (*dto.CalendarResponse, error)
	SetMode(ctx context.Context, v Viewer, req *dto.SetViewModeRequest) (*dto.CalendarResponse, error)
	Navigate(ctx context.Context, v Viewer, req *dto.NavigateRequest) (*dto.CalendarResponse, error)
	Drop(ctx context.Context, v Viewer, req *dto.DropRequest) (*dto.ShiftResponse, error)
}

type calendarService struct {
	loader     snapshotLoader
	states     ViewStateStore
	assignment AssignmentService
	metrics    *metrics.Metrics
	loc        *time.Location
	now        func() time.Time
	logger     *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(
	repo *repository.Repository,
	states ViewStateStore,
	assignment AssignmentService,
	loc *time.Location,
	m *metrics.Metrics,
	logger *zap.Logger,
) CalendarService {
	return &calendarService{
		loader:     snapshotLoader{repo: repo, loc: loc, logger: logger},
		states:     states,
		assignment: assignment,
		metrics:    m,
		loc:        loc,
		now:        time.Now,
		logger:     logger,
	}
}

// ────────────────────── Get ──────────────────────

func (s *calendarService) Get(ctx context.Context, v Viewer, q *dto.CalendarQuery) (*dto.CalendarResponse, error) {
	view := s.restore(ctx, v)

	changed := false
	if q.Mode != "" {
		mode, ok := calendar.ParseViewMode(q.Mode)
		if !ok {
			return nil, ErrInvalidViewMode
		}
		if err := view.SetMode(mode); err != nil {
			return nil, ErrInvalidViewMode
		}
		changed = true
	}
	if q.Date != "" {
		date, ok := calendar.ParseDate(q.Date, s.loc)
		if !ok {
			return nil, ErrInvalidDate
		}
		view = calendar.NewCalendarView(calendar.ViewState{
			Mode:      view.State().Mode,
			GridMode:  view.State().GridMode,
			Reference: date,
		}, s.now, s.loc)
		changed = true
	}
	if changed {
		s.persist(ctx, v, view)
	}
	return s.render(ctx, v, view), nil
}

// ────────────────────── SetMode ──────────────────────

func (s *calendarService) SetMode(ctx context.Context, v Viewer, req *dto.SetViewModeRequest) (*dto.CalendarResponse, error) {
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

// ────────────────────── Navigate ──────────────────────

func (s *calendarService) Navigate(ctx context.Context, v Viewer, req *dto.NavigateRequest) (*dto.CalendarResponse, error) {
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

// ────────────────────── Drop ──────────────────────

// Drop 把员工拖放到某天：拖拽源携带员工 ID，放置目标收到后执行一次分配
func (s *calendarService) Drop(ctx context.Context, v Viewer, req *dto.DropRequest) (*dto.ShiftResponse, error) {
	date, ok := calendar.ParseDate(req.Date, s.loc)
	if !ok {
		s.countDrop("rejected")
		return nil, ErrInvalidDate
	}
	src, err := dnd.NewSource(req.EmployeeID)
	if err != nil {
		s.countDrop("rejected")
		return nil, ErrEmptyEmployee
	}

	var assigned *dto.ShiftResponse
	target := dnd.NewTarget(date, func(ctx context.Context, p dnd.Payload, day time.Time) error {
		shift, err := s.assignment.AssignOn(ctx, v, p.EmployeeID, day, req.StartTime, req.EndTime)
		if err != nil {
			return err
		}
		assigned = shift
		return nil
	})

	if err := src.Begin().Drop(ctx, target); err != nil {
		s.countDrop("failed")
		return nil, err
	}
	s.countDrop("assigned")
	return assigned, nil
}

// ── 内部方法 ──

func (s *calendarService) restore(ctx context.Context, v Viewer) *calendar.CalendarView {
	st, _, err := s.states.Load(ctx, viewStateKey(calendarViewKey, v))
	if err != nil {
		s.logger.Warn("读取日历视图状态失败，使用默认视图", zap.String("user_id", v.UserID), zap.Error(err))
	}
	return calendar.NewCalendarView(st, s.now, s.loc)
}

func (s *calendarService) persist(ctx context.Context, v Viewer, view *calendar.CalendarView) {
	if err := s.states.Save(ctx, viewStateKey(calendarViewKey, v), view.State()); err != nil {
		s.logger.Warn("保存日历视图状态失败", zap.String("user_id", v.UserID), zap.Error(err))
	}
}

func (s *calendarService) render(ctx context.Context, v Viewer, view *calendar.CalendarView) *dto.CalendarResponse {
	data, notices := s.loader.load(ctx, v.OrganizationID)
	return toCalendarResponse(view.Render(data), calendar.Today(s.now(), s.loc), notices)
}

func (s *calendarService) countDrop(result string) {
	if s.metrics != nil {
		s.metrics.Drops.WithLabelValues(result).Inc()
	}
}
