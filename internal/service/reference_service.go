package service

import (
	"context"
	"sync"
	"time"

	"github.com/jagannathit007/BSock-admin-sub004/internal/cache"
	"github.com/jagannathit007/BSock-admin-sub004/internal/config"
	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"
	"github.com/jagannathit007/BSock-admin-sub004/internal/logger"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
	"github.com/jagannathit007/BSock-admin-sub004/internal/repository"
)

// ReferenceService 表单参考数据服务。下拉字典一次性加载：
// 首次访问触发加载，成功后常驻内存并写入 Redis；加载失败本地兜底，
// 各选项列表降级为空，录入会话照常进行，由显式 Reload 恢复。
type ReferenceService struct {
	cfg          *config.FormConfig
	gradeRepo    repository.GradeRepository
	sellerRepo   repository.SellerRepository
	locationRepo repository.LocationRepository
	familyRepo   repository.SkuFamilyRepository

	mu    sync.Mutex
	state string
	data  *cache.ReferenceData
}

// NewReferenceService 创建参考数据服务
func NewReferenceService(
	cfg *config.FormConfig,
	gradeRepo repository.GradeRepository,
	sellerRepo repository.SellerRepository,
	locationRepo repository.LocationRepository,
	familyRepo repository.SkuFamilyRepository,
) *ReferenceService {
	return &ReferenceService{
		cfg:          cfg,
		gradeRepo:    gradeRepo,
		sellerRepo:   sellerRepo,
		locationRepo: locationRepo,
		familyRepo:   familyRepo,
		state:        constants.ReferenceStatePending,
	}
}

// State 当前加载状态（pending/loaded/failed）
func (s *ReferenceService) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Get 获取参考数据。pending 时触发一次加载；加载失败不报错，
// 返回空字典让表单继续可用，不自动重试。
func (s *ReferenceService) Get(ctx context.Context) (*cache.ReferenceData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case constants.ReferenceStateLoaded, constants.ReferenceStateFailed:
		return s.data, nil
	}
	data, err := s.loadLocked(ctx)
	if err != nil {
		return s.data, nil
	}
	return data, nil
}

// Reload 清除缓存并强制重新加载
func (s *ReferenceService) Reload(ctx context.Context) (*cache.ReferenceData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = cache.DelReferenceData(ctx)
	s.state = constants.ReferenceStatePending
	s.data = nil
	return s.loadLocked(ctx)
}

// Invalidate 字典数据变更后失效快照，下次访问重新加载
func (s *ReferenceService) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = cache.DelReferenceData(ctx)
	s.state = constants.ReferenceStatePending
	s.data = nil
}

// loadLocked 实际加载逻辑，调用方必须持有 s.mu。
// 先查 Redis 快照，未命中时逐表读取并回写。
func (s *ReferenceService) loadLocked(ctx context.Context) (*cache.ReferenceData, error) {
	if cached, hit, err := cache.GetReferenceData(ctx); err == nil && hit {
		s.state = constants.ReferenceStateLoaded
		s.data = cached
		return cached, nil
	}

	data, err := s.loadFromRepos()
	if err != nil {
		s.state = constants.ReferenceStateFailed
		s.data = emptyReferenceData()
		logger.Warnw("reference_load_failed", "error", err)
		return nil, ErrReferenceLoadFailed
	}

	if err := cache.SetReferenceData(ctx, data, s.cacheTTL()); err != nil {
		logger.Warnw("reference_cache_write_failed", "error", err)
	}

	s.state = constants.ReferenceStateLoaded
	s.data = data
	return data, nil
}

func (s *ReferenceService) loadFromRepos() (*cache.ReferenceData, error) {
	grades, err := s.gradeRepo.ListActive()
	if err != nil {
		return nil, err
	}
	sellers, err := s.sellerRepo.ListActive()
	if err != nil {
		return nil, err
	}
	current, err := s.locationRepo.ListByKind(models.LocationKindCurrent)
	if err != nil {
		return nil, err
	}
	delivery, err := s.locationRepo.ListByKind(models.LocationKindDelivery)
	if err != nil {
		return nil, err
	}
	families, err := s.familyRepo.ListActive("")
	if err != nil {
		return nil, err
	}
	return &cache.ReferenceData{
		Grades:            grades,
		Sellers:           sellers,
		CurrentLocations:  current,
		DeliveryLocations: delivery,
		SkuFamilies:       families,
		LoadedAt:          time.Now().Unix(),
	}, nil
}

// emptyReferenceData 加载失败时的兜底字典：各选项列表为空但非 nil，
// 序列化后客户端拿到的是空数组而不是 null。
func emptyReferenceData() *cache.ReferenceData {
	return &cache.ReferenceData{
		Grades:            []models.Grade{},
		Sellers:           []models.Seller{},
		CurrentLocations:  []models.LocationOption{},
		DeliveryLocations: []models.LocationOption{},
		SkuFamilies:       []models.SkuFamily{},
	}
}

func (s *ReferenceService) cacheTTL() time.Duration {
	if s.cfg != nil && s.cfg.ReferenceCacheTTLSec > 0 {
		return time.Duration(s.cfg.ReferenceCacheTTLSec) * time.Second
	}
	return 5 * time.Minute
}
