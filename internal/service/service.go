package service

import (
	"go.uber.org/zap"

	"shiftboard/config"
	"shiftboard/internal/repository"
	"shiftboard/pkg/metrics"
	"shiftboard/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Employee   EmployeeService
	Assignment AssignmentService
	Holiday    HolidayService
	Calendar   CalendarService
	Gantt      GanttService
	Export     ExportService
}

// NewService 创建 Service 聚合
// rdb 为 nil 时视图状态保存在进程内存中；m 为 nil 时不记录业务指标
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Service {
	loc := cfg.Scheduling.Location()

	var backend viewStateBackend
	if rdb != nil {
		backend = rdb
	}
	states := NewViewStateStore(backend, cfg.Scheduling.ViewStateTTL)

	assignment := NewAssignmentService(repo, &cfg.Scheduling, m, logger)
	return &Service{
		Employee:   NewEmployeeService(repo, logger),
		Assignment: assignment,
		Holiday:    NewHolidayService(repo, &cfg.Holiday, loc, logger),
		Calendar:   NewCalendarService(repo, states, assignment, loc, m, logger),
		Gantt:      NewGanttService(repo, states, loc, logger),
		Export:     NewExportService(repo, states, loc, logger),
	}
}
