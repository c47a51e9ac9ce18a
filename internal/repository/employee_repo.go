package repository

import (
	"context"

	"gorm.io/gorm"

	"shiftboard/internal/model"
)

// EmployeeRepository 员工目录数据访问接口（只读）
type EmployeeRepository interface {
	ListByOrganization(ctx context.Context, orgID string) ([]model.Employee, error)
	GetByID(ctx context.Context, orgID, employeeID string) (*model.Employee, error)
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) ListByOrganization(ctx context.Context, orgID string) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC, employee_id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) GetByID(ctx context.Context, orgID, employeeID string) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND employee_id = ?", orgID, employeeID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}
