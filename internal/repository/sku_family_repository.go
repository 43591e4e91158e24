package repository

import (
	"errors"
	"strings"

	"github.com/jagannathit007/BSock-admin-sub004/internal/models"

	"gorm.io/gorm"
)

// SkuFamilyRepository 机型族数据访问接口
type SkuFamilyRepository interface {
	ListActive(search string) ([]models.SkuFamily, error)
	GetByID(id uint) (*models.SkuFamily, error)
	ListVariants(familyID uint) ([]models.SkuFamilyVariant, error)
	Create(family *models.SkuFamily) error
	Update(family *models.SkuFamily) error
	Delete(id uint) error
}

// GormSkuFamilyRepository GORM 实现
type GormSkuFamilyRepository struct {
	db *gorm.DB
}

// NewSkuFamilyRepository 创建机型族仓库
func NewSkuFamilyRepository(db *gorm.DB) *GormSkuFamilyRepository {
	return &GormSkuFamilyRepository{db: db}
}

// ListActive 获取启用的机型族列表，支持名称/品牌模糊搜索
func (r *GormSkuFamilyRepository) ListActive(search string) ([]models.SkuFamily, error) {
	families := make([]models.SkuFamily, 0)
	query := r.db.Where("is_active = ?", true)
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		query = query.Where("name LIKE ? OR brand LIKE ?", like, like)
	}
	if err := query.Order("brand ASC, name ASC").Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

// GetByID 根据 ID 获取机型族，预加载规格列表
func (r *GormSkuFamilyRepository) GetByID(id uint) (*models.SkuFamily, error) {
	var family models.SkuFamily
	err := r.db.
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_seq ASC, id ASC")
		}).
		First(&family, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &family, nil
}

// ListVariants 获取机型族的规格列表（按展示顺序）
func (r *GormSkuFamilyRepository) ListVariants(familyID uint) ([]models.SkuFamilyVariant, error) {
	variants := make([]models.SkuFamilyVariant, 0)
	err := r.db.
		Where("sku_family_id = ?", familyID).
		Order("display_seq ASC, id ASC").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

// Create 创建机型族（连带规格）
func (r *GormSkuFamilyRepository) Create(family *models.SkuFamily) error {
	return r.db.Create(family).Error
}

// Update 更新机型族
func (r *GormSkuFamilyRepository) Update(family *models.SkuFamily) error {
	return r.db.Save(family).Error
}

// Delete 删除机型族及其规格（软删除）
func (r *GormSkuFamilyRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sku_family_id = ?", id).Delete(&models.SkuFamilyVariant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SkuFamily{}, id).Error
	})
}
