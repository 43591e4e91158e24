package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jagannathit007/BSock-admin-sub004/internal/config"
	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
	"github.com/jagannathit007/BSock-admin-sub004/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupReferenceServiceTest(t *testing.T) (*ReferenceService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Grade{}, &models.Seller{}, &models.LocationOption{}, &models.SkuFamily{}, &models.SkuFamilyVariant{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewReferenceService(
		&config.FormConfig{ReferenceCacheTTLSec: 60},
		repository.NewGradeRepository(db),
		repository.NewSellerRepository(db),
		repository.NewLocationRepository(db),
		repository.NewSkuFamilyRepository(db),
	)
	return svc, db
}

func TestReferenceGetLoadsOnce(t *testing.T) {
	svc, db := setupReferenceServiceTest(t)

	if err := db.Create(&models.Grade{Title: "A+", IsActive: true}).Error; err != nil {
		t.Fatalf("seed grade failed: %v", err)
	}
	if err := db.Create(&models.Seller{Name: "HK Trading Co", IsActive: true}).Error; err != nil {
		t.Fatalf("seed seller failed: %v", err)
	}

	if got := svc.State(); got != constants.ReferenceStatePending {
		t.Fatalf("expected pending before first access, got %q", got)
	}

	data, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get reference failed: %v", err)
	}
	if len(data.Grades) != 1 || data.Grades[0].Title != "A+" {
		t.Fatalf("grades not loaded: %+v", data.Grades)
	}
	if svc.State() != constants.ReferenceStateLoaded {
		t.Fatalf("expected loaded state, got %q", svc.State())
	}

	// 加载成功后新增字典数据不影响已有快照
	if err := db.Create(&models.Grade{Title: "B", IsActive: true}).Error; err != nil {
		t.Fatalf("seed grade failed: %v", err)
	}
	again, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if len(again.Grades) != 1 {
		t.Fatalf("snapshot must not reload implicitly, got %d grades", len(again.Grades))
	}
}

func TestReferenceReloadPicksUpChanges(t *testing.T) {
	svc, db := setupReferenceServiceTest(t)

	if _, err := svc.Get(context.Background()); err != nil {
		t.Fatalf("initial get failed: %v", err)
	}
	if err := db.Create(&models.LocationOption{Kind: models.LocationKindDelivery, Code: "HK", Name: "Hong Kong"}).Error; err != nil {
		t.Fatalf("seed location failed: %v", err)
	}

	data, err := svc.Reload(context.Background())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(data.DeliveryLocations) != 1 || data.DeliveryLocations[0].Code != "HK" {
		t.Fatalf("reload missed new location: %+v", data.DeliveryLocations)
	}
}

type failingGradeRepo struct{}

func (failingGradeRepo) ListActive() ([]models.Grade, error)      { return nil, errors.New("db gone") }
func (failingGradeRepo) List() ([]models.Grade, error)            { return nil, errors.New("db gone") }
func (failingGradeRepo) GetByID(uint) (*models.Grade, error)      { return nil, errors.New("db gone") }
func (failingGradeRepo) Create(*models.Grade) error               { return errors.New("db gone") }
func (failingGradeRepo) Update(*models.Grade) error               { return errors.New("db gone") }
func (failingGradeRepo) Delete(uint) error                        { return errors.New("db gone") }

func TestReferenceFailureDegradesToEmptyLists(t *testing.T) {
	svc, _ := setupReferenceServiceTest(t)
	svc.gradeRepo = failingGradeRepo{}

	data, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("load failure must not surface to caller, got %v", err)
	}
	if data == nil {
		t.Fatalf("expected empty fallback payload, got nil")
	}
	if len(data.Grades) != 0 || len(data.Sellers) != 0 || len(data.DeliveryLocations) != 0 || len(data.SkuFamilies) != 0 {
		t.Fatalf("fallback payload must have empty lists: %+v", data)
	}
	if data.Grades == nil {
		t.Fatalf("fallback lists must serialize as arrays, not null")
	}
	if svc.State() != constants.ReferenceStateFailed {
		t.Fatalf("expected failed state, got %q", svc.State())
	}

	// 失败后不自动重试，继续返回空字典
	again, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if len(again.Grades) != 0 || svc.State() != constants.ReferenceStateFailed {
		t.Fatalf("degraded state must hold until reload, grades=%d state=%q", len(again.Grades), svc.State())
	}

	// 显式 Reload 报错并保持降级
	if _, err := svc.Reload(context.Background()); !errors.Is(err, ErrReferenceLoadFailed) {
		t.Fatalf("reload against failing repo should report the failure, got %v", err)
	}

	// 数据源恢复后 Reload 回到 loaded
	svc.gradeRepo = setupHealthyGradeRepo(t)
	if _, err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload after recovery failed: %v", err)
	}
	if svc.State() != constants.ReferenceStateLoaded {
		t.Fatalf("expected loaded state after reload, got %q", svc.State())
	}
}

func setupHealthyGradeRepo(t *testing.T) repository.GradeRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Grade{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return repository.NewGradeRepository(db)
}
