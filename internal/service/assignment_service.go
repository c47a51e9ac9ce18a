package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shiftboard/config"
	"shiftboard/internal/calendar"
	"shiftboard/internal/dto"
	"shiftboard/internal/model"
	"shiftboard/internal/repository"
	"shiftboard/pkg/metrics"
)

// ── 班次模块业务错误 ──

var (
	ErrShiftNotFound     = errors.New("班次不存在")
	ErrInvalidDate       = errors.New("日期格式无效，应为 YYYY-MM-DD")
	ErrEmptyEmployee     = errors.New("员工 ID 不能为空")
	ErrInvalidShiftClock = errors.New("班次时间格式无效，应为 HH:MM")
)

// AssignmentService 班次分配业务接口
//
// 规则：
//   - 不做冲突检测，同一员工同一天可重复分配（分段班）
//   - 员工 ID 不校验是否存在于目录，视图中显示为 Unknown
//   - 删除不存在的班次为空操作
type AssignmentService interface {
	Assign(ctx context.Context, v Viewer, req *dto.AssignShiftRequest) (*dto.ShiftResponse, error)
	AssignOn(ctx context.Context, v Viewer, employeeID string, date time.Time, startTime, endTime string) (*dto.ShiftResponse, error)
	Remove(ctx context.Context, v Viewer, shiftID string) error
	RemoveAllForEmployeeOnDate(ctx context.Context, v Viewer, req *dto.RemoveShiftsRequest) (*dto.RemoveShiftsResponse, error)
	Edit(ctx context.Context, v Viewer, shiftID string, req *dto.EditShiftRequest) (*dto.ShiftResponse, error)
	List(ctx context.Context, v Viewer) ([]dto.ShiftResponse, error)
}

type assignmentService struct {
	repo    *repository.Repository
	sched   *config.SchedulingConfig
	loc     *time.Location
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例；m 可为 nil
func NewAssignmentService(repo *repository.Repository, sched *config.SchedulingConfig, m *metrics.Metrics, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, sched: sched, loc: sched.Location(), metrics: m, logger: logger}
}

// ────────────────────── Assign ──────────────────────

func (s *assignmentService) Assign(ctx context.Context, v Viewer, req *dto.AssignShiftRequest) (*dto.ShiftResponse, error) {
	date, ok := calendar.ParseDate(req.Date, s.loc)
	if !ok {
		return nil, ErrInvalidDate
	}
	return s.AssignOn(ctx, v, req.EmployeeID, date, req.StartTime, req.EndTime)
}

func (s *assignmentService) AssignOn(ctx context.Context, v Viewer, employeeID string, date time.Time, startTime, endTime string) (*dto.ShiftResponse, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrEmptyEmployee
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if startTime == "" {
		startTime = s.sched.DefaultStartTime
	}
	if endTime == "" {
		endTime = s.sched.DefaultEndTime
	}
	if !isClock(startTime) || !isClock(endTime) {
		return nil, ErrInvalidShiftClock
	}

	shift := &model.Shift{
		ShiftID:        uuid.NewString(),
		OrganizationID: v.OrganizationID,
		EmployeeID:     employeeID,
		Date:           storageDay(date),
		StartTime:      startTime,
		EndTime:        endTime,
	}
	shift.CreatedBy = &v.UserID
	shift.UpdatedBy = &v.UserID

	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("创建班次失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ShiftsCreated.Inc()
	}

	s.logger.Info("班次已分配",
		zap.String("shift_id", shift.ShiftID),
		zap.String("employee_id", employeeID),
		zap.String("date", calendar.DayKey(date)),
	)

	shift.Date = localDay(shift.Date, s.loc)
	resp := toShiftResponse(shift, s.employeeName(ctx, v.OrganizationID, employeeID))
	return &resp, nil
}

// ────────────────────── Remove ──────────────────────

func (s *assignmentService) Remove(ctx context.Context, v Viewer, shiftID string) error {
	n, err := s.repo.Shift.Delete(ctx, v.OrganizationID, shiftID)
	if err != nil {
		s.logger.Error("删除班次失败", zap.String("shift_id", shiftID), zap.Error(err))
		return err
	}
	if n > 0 && s.metrics != nil {
		s.metrics.ShiftsRemoved.Add(float64(n))
	}
	return nil
}

// RemoveAllForEmployeeOnDate 删除某员工某天的全部班次，返回删除条数
// 基于全量读取后的分组结果逐条删除，其他员工或其他日期的班次不受影响
func (s *assignmentService) RemoveAllForEmployeeOnDate(ctx context.Context, v Viewer, req *dto.RemoveShiftsRequest) (*dto.RemoveShiftsResponse, error) {
	if strings.TrimSpace(req.EmployeeID) == "" {
		return nil, ErrEmptyEmployee
	}
	date, ok := calendar.ParseDate(req.Date, s.loc)
	if !ok {
		return nil, ErrInvalidDate
	}

	shifts, err := s.repo.Shift.ListByOrganization(ctx, v.OrganizationID)
	if err != nil {
		s.logger.Error("查询班次失败", zap.Error(err))
		return nil, err
	}
	for i := range shifts {
		shifts[i].Date = localDay(shifts[i].Date, s.loc)
	}

	idx := calendar.NewShiftIndex(shifts, nil)
	targets := idx.ShiftsByEmployeeOn(date)[req.EmployeeID]

	removed := 0
	for _, shift := range targets {
		if err := s.Remove(ctx, v, shift.ShiftID); err != nil {
			return &dto.RemoveShiftsResponse{Removed: removed}, err
		}
		removed++
	}
	return &dto.RemoveShiftsResponse{Removed: removed}, nil
}

// ────────────────────── Edit ──────────────────────

func (s *assignmentService) Edit(ctx context.Context, v Viewer, shiftID string, req *dto.EditShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, v.OrganizationID, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询班次失败", zap.String("shift_id", shiftID), zap.Error(err))
		return nil, err
	}

	if req.EmployeeID != nil {
		id := strings.TrimSpace(*req.EmployeeID)
		if id == "" {
			return nil, ErrEmptyEmployee
		}
		shift.EmployeeID = id
	}
	if req.Date != nil {
		date, ok := calendar.ParseDate(*req.Date, s.loc)
		if !ok {
			return nil, ErrInvalidDate
		}
		shift.Date = storageDay(date)
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if !isClock(shift.StartTime) || !isClock(shift.EndTime) {
		return nil, ErrInvalidShiftClock
	}
	shift.UpdatedBy = &v.UserID

	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("更新班次失败", zap.String("shift_id", shiftID), zap.Error(err))
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ShiftsEdited.Inc()
	}

	shift.Date = localDay(shift.Date, s.loc)
	resp := toShiftResponse(shift, s.employeeName(ctx, v.OrganizationID, shift.EmployeeID))
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *assignmentService) List(ctx context.Context, v Viewer) ([]dto.ShiftResponse, error) {
	shifts, err := s.repo.Shift.ListByOrganization(ctx, v.OrganizationID)
	if err != nil {
		s.logger.Error("列出班次失败", zap.Error(err))
		return nil, err
	}

	employees, err := s.repo.Employee.ListByOrganization(ctx, v.OrganizationID)
	if err != nil {
		// 员工目录不可用时仍返回班次，名称显示为 Unknown
		s.logger.Warn("加载员工目录失败", zap.Error(err))
	}
	idx := calendar.NewShiftIndex(nil, employees)

	result := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		shifts[i].Date = localDay(shifts[i].Date, s.loc)
		result = append(result, toShiftResponse(&shifts[i], idx.Employee(shifts[i].EmployeeID).Name))
	}
	return result, nil
}

func (s *assignmentService) employeeName(ctx context.Context, orgID, employeeID string) string {
	e, err := s.repo.Employee.GetByID(ctx, orgID, employeeID)
	if err != nil {
		return calendar.UnknownEmployeeName
	}
	return e.Name
}
