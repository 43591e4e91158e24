package service

import (
	"context"
	"strings"

	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
	"github.com/jagannathit007/BSock-admin-sub004/internal/repository"
)

// CatalogService 字典维护服务。负责成色等级、供货商、地点选项与
// 机型族的后台增删改，任何写操作都会失效参考数据快照。
type CatalogService struct {
	gradeRepo    repository.GradeRepository
	sellerRepo   repository.SellerRepository
	locationRepo repository.LocationRepository
	familyRepo   repository.SkuFamilyRepository
	reference    *ReferenceService
}

// NewCatalogService 创建字典维护服务
func NewCatalogService(
	gradeRepo repository.GradeRepository,
	sellerRepo repository.SellerRepository,
	locationRepo repository.LocationRepository,
	familyRepo repository.SkuFamilyRepository,
	reference *ReferenceService,
) *CatalogService {
	return &CatalogService{
		gradeRepo:    gradeRepo,
		sellerRepo:   sellerRepo,
		locationRepo: locationRepo,
		familyRepo:   familyRepo,
		reference:    reference,
	}
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.reference != nil {
		s.reference.Invalidate(ctx)
	}
}

// ListGrades 等级列表
func (s *CatalogService) ListGrades() ([]models.Grade, error) {
	return s.gradeRepo.List()
}

// SaveGrade 创建或更新等级
func (s *CatalogService) SaveGrade(ctx context.Context, grade *models.Grade) error {
	if strings.TrimSpace(grade.Title) == "" {
		return ErrValidationFailed
	}
	var err error
	if grade.ID == 0 {
		err = s.gradeRepo.Create(grade)
	} else {
		err = s.gradeRepo.Update(grade)
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeleteGrade 删除等级
func (s *CatalogService) DeleteGrade(ctx context.Context, id uint) error {
	if err := s.gradeRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ListSellers 供货商列表
func (s *CatalogService) ListSellers(search string) ([]models.Seller, error) {
	return s.sellerRepo.List(search)
}

// SaveSeller 创建或更新供货商
func (s *CatalogService) SaveSeller(ctx context.Context, seller *models.Seller) error {
	if strings.TrimSpace(seller.Name) == "" {
		return ErrValidationFailed
	}
	var err error
	if seller.ID == 0 {
		err = s.sellerRepo.Create(seller)
	} else {
		err = s.sellerRepo.Update(seller)
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeleteSeller 删除供货商
func (s *CatalogService) DeleteSeller(ctx context.Context, id uint) error {
	if err := s.sellerRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ListLocations 地点选项列表
func (s *CatalogService) ListLocations(kind string) ([]models.LocationOption, error) {
	return s.locationRepo.ListByKind(kind)
}

// SaveLocation 创建地点选项
func (s *CatalogService) SaveLocation(ctx context.Context, option *models.LocationOption) error {
	if option.Kind != models.LocationKindCurrent && option.Kind != models.LocationKindDelivery {
		return ErrValidationFailed
	}
	if strings.TrimSpace(option.Code) == "" || strings.TrimSpace(option.Name) == "" {
		return ErrValidationFailed
	}
	if err := s.locationRepo.Create(option); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeleteLocation 删除地点选项
func (s *CatalogService) DeleteLocation(ctx context.Context, id uint) error {
	if err := s.locationRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ListSkuFamilies 机型族列表
func (s *CatalogService) ListSkuFamilies(search string) ([]models.SkuFamily, error) {
	return s.familyRepo.ListActive(search)
}

// GetSkuFamily 机型族详情（含规格）
func (s *CatalogService) GetSkuFamily(id uint) (*models.SkuFamily, error) {
	family, err := s.familyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if family == nil {
		return nil, ErrNotFound
	}
	return family, nil
}

// SaveSkuFamily 创建或更新机型族
func (s *CatalogService) SaveSkuFamily(ctx context.Context, family *models.SkuFamily) error {
	if strings.TrimSpace(family.Name) == "" {
		return ErrValidationFailed
	}
	var err error
	if family.ID == 0 {
		err = s.familyRepo.Create(family)
	} else {
		err = s.familyRepo.Update(family)
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeleteSkuFamily 删除机型族
func (s *CatalogService) DeleteSkuFamily(ctx context.Context, id uint) error {
	if err := s.familyRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
