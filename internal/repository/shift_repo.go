package repository

import (
	"context"

	"gorm.io/gorm"

	"shiftboard/internal/model"
)

// ShiftRepository 班次存储：追加 / 按 ID 删除 / 全量读取 / 单条读取 / 更新
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, orgID, shiftID string) (*model.Shift, error)
	ListByOrganization(ctx context.Context, orgID string) ([]model.Shift, error)
	ListByEmployee(ctx context.Context, orgID, employeeID string) ([]model.Shift, error)
	Update(ctx context.Context, shift *model.Shift) error
	Delete(ctx context.Context, orgID, shiftID string) (int64, error)
}

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepo) GetByID(ctx context.Context, orgID, shiftID string) (*model.Shift, error) {
	var s model.Shift
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND shift_id = ?", orgID, shiftID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByOrganization 按插入顺序返回组织下全部班次
// created_at 精度不足以区分同批插入，以 seq 为准
func (r *shiftRepo) ListByOrganization(ctx context.Context, orgID string) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("seq ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) ListByEmployee(ctx context.Context, orgID, employeeID string) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND employee_id = ?", orgID, employeeID).
		Order("date ASC, start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) Update(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).
		Model(&model.Shift{}).
		Where("organization_id = ? AND shift_id = ?", shift.OrganizationID, shift.ShiftID).
		Updates(map[string]interface{}{
			"employee_id": shift.EmployeeID,
			"date":        shift.Date,
			"start_time":  shift.StartTime,
			"end_time":    shift.EndTime,
			"updated_by":  shift.UpdatedBy,
		}).Error
}

// Delete 删除班次并返回受影响行数；不存在时返回 0 而非错误
func (r *shiftRepo) Delete(ctx context.Context, orgID, shiftID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("organization_id = ? AND shift_id = ?", orgID, shiftID).
		Delete(&model.Shift{})
	return result.RowsAffected, result.Error
}
