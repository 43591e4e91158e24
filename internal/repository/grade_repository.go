package repository

import (
	"errors"

	"github.com/jagannathit007/BSock-admin-sub004/internal/models"

	"gorm.io/gorm"
)

// GradeRepository 成色等级数据访问接口
type GradeRepository interface {
	ListActive() ([]models.Grade, error)
	List() ([]models.Grade, error)
	GetByID(id uint) (*models.Grade, error)
	Create(grade *models.Grade) error
	Update(grade *models.Grade) error
	Delete(id uint) error
}

// GormGradeRepository GORM 实现
type GormGradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository 创建成色等级仓库
func NewGradeRepository(db *gorm.DB) *GormGradeRepository {
	return &GormGradeRepository{db: db}
}

// ListActive 获取启用的等级列表（供表单下拉使用）
func (r *GormGradeRepository) ListActive() ([]models.Grade, error) {
	grades := make([]models.Grade, 0)
	err := r.db.
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&grades).Error
	if err != nil {
		return nil, err
	}
	return grades, nil
}

// List 获取全部等级列表
func (r *GormGradeRepository) List() ([]models.Grade, error) {
	grades := make([]models.Grade, 0)
	if err := r.db.Order("sort_order ASC, id ASC").Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

// GetByID 根据 ID 获取等级
func (r *GormGradeRepository) GetByID(id uint) (*models.Grade, error) {
	var grade models.Grade
	if err := r.db.First(&grade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &grade, nil
}

// Create 创建等级
func (r *GormGradeRepository) Create(grade *models.Grade) error {
	return r.db.Create(grade).Error
}

// Update 更新等级
func (r *GormGradeRepository) Update(grade *models.Grade) error {
	return r.db.Save(grade).Error
}

// Delete 删除等级（软删除）
func (r *GormGradeRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Grade{}, id).Error
}
