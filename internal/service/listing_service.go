package service

import (
	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
	"github.com/jagannathit007/BSock-admin-sub004/internal/repository"
)

// ListingService 刊登查询与状态维护服务
type ListingService struct {
	listingRepo repository.ListingRepository
}

// NewListingService 创建刊登服务
func NewListingService(listingRepo repository.ListingRepository) *ListingService {
	return &ListingService{listingRepo: listingRepo}
}

// List 刊登列表
func (s *ListingService) List(filter repository.ListingListFilter) ([]models.Listing, int64, error) {
	return s.listingRepo.List(filter)
}

// Get 刊登详情
func (s *ListingService) Get(id uint) (*models.Listing, error) {
	listing, err := s.listingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrNotFound
	}
	return listing, nil
}

// UpdateStatus 更新刊登状态，仅允许预定义状态值
func (s *ListingService) UpdateStatus(id uint, status string) error {
	switch status {
	case constants.ListingStatusActive, constants.ListingStatusInactive, constants.ListingStatusSoldOut:
	default:
		return ErrValidationFailed
	}
	listing, err := s.listingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrNotFound
	}
	return s.listingRepo.UpdateStatus(id, status)
}

// Delete 删除刊登行
func (s *ListingService) Delete(id uint) error {
	listing, err := s.listingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrNotFound
	}
	return s.listingRepo.Delete(id)
}

// ListBatches 提交批次列表
func (s *ListingService) ListBatches(filter repository.BatchListFilter) ([]models.ListingBatch, int64, error) {
	return s.listingRepo.ListBatches(filter)
}

// GetBatch 批次详情及其全部行
func (s *ListingService) GetBatch(id uint) (*models.ListingBatch, []models.Listing, error) {
	batch, err := s.listingRepo.GetBatchByID(id)
	if err != nil {
		return nil, nil, err
	}
	if batch == nil {
		return nil, nil, ErrNotFound
	}
	listings, _, err := s.listingRepo.List(repository.ListingListFilter{BatchID: id})
	if err != nil {
		return nil, nil, err
	}
	return batch, listings, nil
}
