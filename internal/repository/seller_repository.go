package repository

import (
	"errors"
	"strings"

	"github.com/jagannathit007/BSock-admin-sub004/internal/models"

	"gorm.io/gorm"
)

// SellerRepository 供货商数据访问接口
type SellerRepository interface {
	ListActive() ([]models.Seller, error)
	List(search string) ([]models.Seller, error)
	GetByID(id uint) (*models.Seller, error)
	Create(seller *models.Seller) error
	Update(seller *models.Seller) error
	Delete(id uint) error
}

// GormSellerRepository GORM 实现
type GormSellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository 创建供货商仓库
func NewSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

// ListActive 获取启用的供货商列表（供表单下拉使用）
func (r *GormSellerRepository) ListActive() ([]models.Seller, error) {
	sellers := make([]models.Seller, 0)
	err := r.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&sellers).Error
	if err != nil {
		return nil, err
	}
	return sellers, nil
}

// List 获取供货商列表，支持名称/编码模糊搜索
func (r *GormSellerRepository) List(search string) ([]models.Seller, error) {
	sellers := make([]models.Seller, 0)
	query := r.db.Model(&models.Seller{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		query = query.Where("name LIKE ? OR code LIKE ?", like, like)
	}
	if err := query.Order("name ASC").Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

// GetByID 根据 ID 获取供货商
func (r *GormSellerRepository) GetByID(id uint) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.First(&seller, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

// Create 创建供货商
func (r *GormSellerRepository) Create(seller *models.Seller) error {
	return r.db.Create(seller).Error
}

// Update 更新供货商
func (r *GormSellerRepository) Update(seller *models.Seller) error {
	return r.db.Save(seller).Error
}

// Delete 删除供货商（软删除）
func (r *GormSellerRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Seller{}, id).Error
}
