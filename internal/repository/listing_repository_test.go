package repository

import (
	"fmt"
	"testing"

	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupListingRepositoryTest(t *testing.T) (*GormListingRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.ListingBatch{}, &models.Listing{}); err != nil {
		t.Fatalf("migrate listing/batch failed: %v", err)
	}
	return NewListingRepository(db), db
}

func buildListing(no string) models.Listing {
	return models.Listing{
		SkuFamilyID:     1,
		SubModelName:    "iPhone 15 Pro",
		Storage:         "256GB",
		Colour:          "Black",
		Status:          constants.ListingStatusActive,
		PriceType:       constants.PriceTypeFixed,
		UniqueListingNo: no,
	}
}

func TestCreateBatchWritesBatchAndRowsTogether(t *testing.T) {
	repo, db := setupListingRepositoryTest(t)

	batch := &models.ListingBatch{
		BatchNo:     "B-20260314-001",
		Mode:        constants.FormModeMulti,
		RowCount:    2,
		Status:      constants.ListingBatchStatusSubmitted,
		SubmittedBy: 1,
	}
	listings := []models.Listing{
		buildListing("ULN-CB-1"),
		buildListing("ULN-CB-2"),
	}
	if err := repo.CreateBatch(batch, listings); err != nil {
		t.Fatalf("create batch failed: %v", err)
	}
	if batch.ID == 0 {
		t.Fatalf("batch id not assigned")
	}

	var count int64
	if err := db.Model(&models.Listing{}).Where("batch_id = ?", batch.ID).Count(&count).Error; err != nil {
		t.Fatalf("count listings failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 listings in batch, got %d", count)
	}
}

func TestCreateBatchRollsBackOnDuplicateListingNo(t *testing.T) {
	repo, db := setupListingRepositoryTest(t)

	first := &models.ListingBatch{BatchNo: "B-20260314-002", Mode: constants.FormModeSingle, RowCount: 1, Status: constants.ListingBatchStatusSubmitted}
	if err := repo.CreateBatch(first, []models.Listing{buildListing("ULN-DUP")}); err != nil {
		t.Fatalf("seed batch failed: %v", err)
	}

	second := &models.ListingBatch{BatchNo: "B-20260314-003", Mode: constants.FormModeSingle, RowCount: 1, Status: constants.ListingBatchStatusSubmitted}
	err := repo.CreateBatch(second, []models.Listing{buildListing("ULN-DUP")})
	if err == nil {
		t.Fatalf("expected duplicate listing no to fail")
	}

	var count int64
	if err := db.Model(&models.ListingBatch{}).Where("batch_no = ?", "B-20260314-003").Count(&count).Error; err != nil {
		t.Fatalf("count batches failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("failed batch must be rolled back, found %d", count)
	}
}

func TestListFiltersByStatusAndSearch(t *testing.T) {
	repo, _ := setupListingRepositoryTest(t)

	batch := &models.ListingBatch{BatchNo: "B-20260314-004", Mode: constants.FormModeMulti, RowCount: 3, Status: constants.ListingBatchStatusSubmitted}
	listings := make([]models.Listing, 0, 3)
	for i := 0; i < 3; i++ {
		listings = append(listings, buildListing(fmt.Sprintf("ULN-LF-%d", i)))
	}
	listings[2].Status = constants.ListingStatusSoldOut
	listings[2].SubModelName = "Galaxy S24 Ultra"
	if err := repo.CreateBatch(batch, listings); err != nil {
		t.Fatalf("create batch failed: %v", err)
	}

	active, total, err := repo.List(ListingListFilter{BatchID: batch.ID, Status: constants.ListingStatusActive})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(active) != 2 {
		t.Fatalf("expected 2 active listings, got total=%d len=%d", total, len(active))
	}

	found, total, err := repo.List(ListingListFilter{BatchID: batch.ID, Search: "Galaxy"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || found[0].SubModelName != "Galaxy S24 Ultra" {
		t.Fatalf("search mismatch: total=%d rows=%+v", total, found)
	}
}

func TestGetByUniqueListingNo(t *testing.T) {
	repo, _ := setupListingRepositoryTest(t)

	batch := &models.ListingBatch{BatchNo: "B-20260314-006", Mode: constants.FormModeSingle, RowCount: 1, Status: constants.ListingBatchStatusSubmitted}
	if err := repo.CreateBatch(batch, []models.Listing{buildListing("ULN-GN-1")}); err != nil {
		t.Fatalf("create batch failed: %v", err)
	}

	got, err := repo.GetByUniqueListingNo("ULN-GN-1")
	if err != nil {
		t.Fatalf("get by listing no failed: %v", err)
	}
	if got == nil || got.SubModelName != "iPhone 15 Pro" {
		t.Fatalf("unexpected listing: %+v", got)
	}

	missing, err := repo.GetByUniqueListingNo("ULN-GN-missing")
	if err != nil {
		t.Fatalf("missing lookup should not error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown listing no, got %+v", missing)
	}
}

func TestMarkBatchNotified(t *testing.T) {
	repo, _ := setupListingRepositoryTest(t)

	batch := &models.ListingBatch{BatchNo: "B-20260314-005", Mode: constants.FormModeSingle, RowCount: 1, Status: constants.ListingBatchStatusSubmitted}
	if err := repo.CreateBatch(batch, []models.Listing{buildListing("ULN-MN-1")}); err != nil {
		t.Fatalf("create batch failed: %v", err)
	}

	if err := repo.MarkBatchNotified(batch.ID); err != nil {
		t.Fatalf("mark notified failed: %v", err)
	}
	got, err := repo.GetBatchByID(batch.ID)
	if err != nil {
		t.Fatalf("get batch failed: %v", err)
	}
	if got.Status != constants.ListingBatchStatusNotified {
		t.Fatalf("expected status notified, got %q", got.Status)
	}
	if got.NotifiedAt == nil {
		t.Fatalf("notified_at should be set")
	}
}
