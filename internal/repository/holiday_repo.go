package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shiftboard/internal/model"
	pkgerrors "shiftboard/pkg/errors"
)

// HolidayRepository 节假日数据访问接口
type HolidayRepository interface {
	ListByOrganization(ctx context.Context, orgID string) ([]model.Holiday, error)
	GetByID(ctx context.Context, orgID, holidayID string) (*model.Holiday, error)
	BatchUpsert(ctx context.Context, holidays []model.Holiday) error
	Update(ctx context.Context, holiday *model.Holiday) error
	Delete(ctx context.Context, orgID, holidayID string) error
}

type holidayRepo struct {
	db *gorm.DB
}

// NewHolidayRepo 创建 HolidayRepository 实例
func NewHolidayRepo(db *gorm.DB) HolidayRepository {
	return &holidayRepo{db: db}
}

func (r *holidayRepo) ListByOrganization(ctx context.Context, orgID string) ([]model.Holiday, error) {
	var holidays []model.Holiday
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("date ASC, created_at ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepo) GetByID(ctx context.Context, orgID, holidayID string) (*model.Holiday, error) {
	var h model.Holiday
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND holiday_id = ?", orgID, holidayID).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// BatchUpsert 批量写入节假日，多批次在同一事务内完成
// (organization_id, date, name) 冲突时覆盖类型与描述，version 自增
func (r *holidayRepo) BatchUpsert(ctx context.Context, holidays []model.Holiday) error {
	if len(holidays) == 0 {
		return nil
	}
	for i := range holidays {
		if holidays[i].HolidayID == "" {
			holidays[i].HolidayID = uuid.NewString()
		}
		if holidays[i].Version == 0 {
			holidays[i].Version = 1
		}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "organization_id"}, {Name: "date"}, {Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"type":        gorm.Expr("EXCLUDED.type"),
				"description": gorm.Expr("EXCLUDED.description"),
				"updated_by":  gorm.Expr("EXCLUDED.updated_by"),
				"updated_at":  gorm.Expr("NOW()"),
				"version":     gorm.Expr("holidays.version + 1"),
			}),
		}).CreateInBatches(holidays, 200).Error
	})
}

// Update 带乐观锁的更新（version 不匹配返回 ErrOptimisticLock）
func (r *holidayRepo) Update(ctx context.Context, holiday *model.Holiday) error {
	oldVersion := holiday.Version
	result := r.db.WithContext(ctx).
		Model(&model.Holiday{}).
		Where("organization_id = ? AND holiday_id = ? AND version = ?", holiday.OrganizationID, holiday.HolidayID, oldVersion).
		Updates(map[string]interface{}{
			"date":        holiday.Date,
			"name":        holiday.Name,
			"type":        holiday.Type,
			"description": holiday.Description,
			"updated_by":  holiday.UpdatedBy,
			"version":     oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	holiday.Version = oldVersion + 1
	return nil
}

func (r *holidayRepo) Delete(ctx context.Context, orgID, holidayID string) error {
	return r.db.WithContext(ctx).
		Where("organization_id = ? AND holiday_id = ?", orgID, holidayID).
		Delete(&model.Holiday{}).Error
}
