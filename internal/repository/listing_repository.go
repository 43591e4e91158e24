package repository

import (
	"errors"
	"strings"

	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"

	"gorm.io/gorm"
)

// ListingRepository 刊登数据访问接口
type ListingRepository interface {
	CreateBatch(batch *models.ListingBatch, listings []models.Listing) error
	List(filter ListingListFilter) ([]models.Listing, int64, error)
	GetByID(id uint) (*models.Listing, error)
	GetByUniqueListingNo(no string) (*models.Listing, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	ListBatches(filter BatchListFilter) ([]models.ListingBatch, int64, error)
	GetBatchByID(id uint) (*models.ListingBatch, error)
	MarkBatchNotified(id uint) error
}

// GormListingRepository GORM 实现
type GormListingRepository struct {
	db *gorm.DB
}

// NewListingRepository 创建刊登仓库
func NewListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// CreateBatch 在同一事务内写入批次与全部刊登行，任一失败整体回滚
func (r *GormListingRepository) CreateBatch(batch *models.ListingBatch, listings []models.Listing) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(batch).Error; err != nil {
			return err
		}
		for i := range listings {
			listings[i].BatchID = batch.ID
		}
		if len(listings) == 0 {
			return nil
		}
		return tx.Create(&listings).Error
	})
}

// List 刊登列表
func (r *GormListingRepository) List(filter ListingListFilter) ([]models.Listing, int64, error) {
	var listings []models.Listing

	query := r.db.Model(&models.Listing{})
	if filter.BatchID != 0 {
		query = query.Where("batch_id = ?", filter.BatchID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.GradeID != "" {
		query = query.Where("grade_id = ?", filter.GradeID)
	}
	if filter.HotDealOnly {
		query = query.Where("hot_deal = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"sub_model_name LIKE ? OR unique_listing_no LIKE ? OR vendor LIKE ? OR supplier LIKE ?",
			like, like, like, like,
		)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC, id DESC").Find(&listings).Error; err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

// GetByID 根据 ID 获取刊登行
func (r *GormListingRepository) GetByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.Preload("Batch").First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

// GetByUniqueListingNo 根据唯一刊登号获取刊登行
func (r *GormListingRepository) GetByUniqueListingNo(no string) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.Where("unique_listing_no = ?", no).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

// UpdateStatus 更新刊登状态
func (r *GormListingRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Listing{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete 删除刊登行（软删除）
func (r *GormListingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Listing{}, id).Error
}

// ListBatches 提交批次列表
func (r *GormListingRepository) ListBatches(filter BatchListFilter) ([]models.ListingBatch, int64, error) {
	var batches []models.ListingBatch

	query := r.db.Model(&models.ListingBatch{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SubmittedBy != 0 {
		query = query.Where("submitted_by = ?", filter.SubmittedBy)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC, id DESC").Find(&batches).Error; err != nil {
		return nil, 0, err
	}

	return batches, total, nil
}

// GetBatchByID 根据 ID 获取批次
func (r *GormListingRepository) GetBatchByID(id uint) (*models.ListingBatch, error) {
	var batch models.ListingBatch
	if err := r.db.First(&batch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

// MarkBatchNotified 标记批次通知完成
func (r *GormListingRepository) MarkBatchNotified(id uint) error {
	return r.db.Model(&models.ListingBatch{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      constants.ListingBatchStatusNotified,
			"notified_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}
