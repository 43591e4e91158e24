package repository

import (
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"

	"gorm.io/gorm"
)

// LocationRepository 地点选项数据访问接口
type LocationRepository interface {
	ListByKind(kind string) ([]models.LocationOption, error)
	Create(option *models.LocationOption) error
	Delete(id uint) error
}

// GormLocationRepository GORM 实现
type GormLocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository 创建地点选项仓库
func NewLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// ListByKind 按类型获取地点选项（current/delivery）
func (r *GormLocationRepository) ListByKind(kind string) ([]models.LocationOption, error) {
	options := make([]models.LocationOption, 0)
	err := r.db.
		Where("kind = ?", kind).
		Order("sort_order ASC, id ASC").
		Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

// Create 创建地点选项
func (r *GormLocationRepository) Create(option *models.LocationOption) error {
	return r.db.Create(option).Error
}

// Delete 删除地点选项（软删除）
func (r *GormLocationRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.LocationOption{}, id).Error
}
