package service

import (
	"context"

	"go.uber.org/zap"

	"shiftboard/internal/dto"
	"shiftboard/internal/repository"
)

// EmployeeService 员工目录（只读）
type EmployeeService interface {
	List(ctx context.Context, v Viewer) ([]dto.EmployeeResponse, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) List(ctx context.Context, v Viewer) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.Employee.ListByOrganization(ctx, v.OrganizationID)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, dto.EmployeeResponse{ID: e.EmployeeID, Name: e.Name})
	}
	return result, nil
}
