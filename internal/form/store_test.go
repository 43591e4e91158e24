package form

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
)

func TestInitializeRowsSingleMode(t *testing.T) {
	rows, err := InitializeRows(constants.FormModeSingle, nil)
	if err != nil {
		t.Fatalf("InitializeRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Status != constants.ListingStatusActive {
		t.Fatalf("expected default status Active, got %q", rows[0].Status)
	}
	if rows[0].PriceType != constants.PriceTypeFixed {
		t.Fatalf("expected default price type Fixed, got %q", rows[0].PriceType)
	}
}

func TestInitializeRowsMultiMode(t *testing.T) {
	sub := uint(7)
	variants := []models.SkuFamilyVariant{
		{SkuFamilyID: 1, SubModelName: "iPhone 15 Pro", Storage: "256GB", Colour: "Black", DisplaySeq: 1},
		{SkuFamilyID: 1, SubSkuFamilyID: &sub, SubModelName: "iPhone 15 Pro Max", Storage: "512GB", Colour: "Natural", RAM: "8GB", DisplaySeq: 2},
	}
	rows, err := InitializeRows(constants.FormModeMulti, variants)
	if err != nil {
		t.Fatalf("InitializeRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].SubModelName != "iPhone 15 Pro" || rows[0].Storage != "256GB" {
		t.Fatalf("variant fields not carried into row: %+v", rows[0])
	}
	if rows[1].SubSkuFamilyID == nil || *rows[1].SubSkuFamilyID != sub {
		t.Fatalf("sub sku family id not carried: %+v", rows[1].SubSkuFamilyID)
	}
	if rows[1].RAM != "8GB" || rows[1].DisplaySeq != 2 {
		t.Fatalf("ram/displaySeq not carried: %+v", rows[1])
	}
}

func TestInitializeRowsMultiModeRequiresVariants(t *testing.T) {
	if _, err := InitializeRows(constants.FormModeMulti, nil); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	if _, err := InitializeRows("bulk", nil); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode for unknown mode, got %v", err)
	}
}

func TestUpdateFieldDerivesAndChecksBounds(t *testing.T) {
	rows, err := InitializeRows(constants.FormModeSingle, nil)
	if err != nil {
		t.Fatalf("InitializeRows failed: %v", err)
	}

	if _, err := UpdateField(rows, 1, FieldHKUsd, "100"); !errors.Is(err, ErrRowIndexOutOfRange) {
		t.Fatalf("expected ErrRowIndexOutOfRange, got %v", err)
	}
	if _, err := UpdateField(rows, -1, FieldHKUsd, "100"); !errors.Is(err, ErrRowIndexOutOfRange) {
		t.Fatalf("expected ErrRowIndexOutOfRange, got %v", err)
	}

	row, err := UpdateField(rows, 0, FieldHKUsd, "100")
	if err != nil {
		t.Fatalf("UpdateField failed: %v", err)
	}
	if !reflect.DeepEqual(row.DeliveryLocations, []string{constants.RegionHongKong}) {
		t.Fatalf("expected delivery locations [HK], got %v", row.DeliveryLocations)
	}
	if rows[0].HKUsd != "" {
		t.Fatalf("input rows must not be mutated, got %q", rows[0].HKUsd)
	}
}

func TestPrepareForSubmission(t *testing.T) {
	rows := []ProductRow{
		{UniqueListingNo: "ULN-KEEP", StartTime: "2026-01-01"},
		{},
		{},
	}
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("HKT", 8*3600))
	prepared := PrepareForSubmission(rows, now)

	if prepared[0].UniqueListingNo != "ULN-KEEP" {
		t.Fatalf("existing listing no must be kept, got %q", prepared[0].UniqueListingNo)
	}
	if prepared[1].UniqueListingNo == "" || prepared[2].UniqueListingNo == "" {
		t.Fatalf("blank listing no must be assigned")
	}
	if prepared[1].UniqueListingNo == prepared[2].UniqueListingNo {
		t.Fatalf("assigned listing numbers must be distinct")
	}

	want := "2026-03-14T01:26:53Z"
	for i, row := range prepared {
		if row.SubmittedAt != want {
			t.Fatalf("row %d: expected submittedAt %q, got %q", i, want, row.SubmittedAt)
		}
	}
	if prepared[0].StartTime != "2026-01-01" {
		t.Fatalf("filled start time must be kept, got %q", prepared[0].StartTime)
	}
	if prepared[1].StartTime != want || prepared[2].StartTime != want {
		t.Fatalf("blank start times must share the batch stamp, got %q and %q", prepared[1].StartTime, prepared[2].StartTime)
	}
	if rows[1].SubmittedAt != "" {
		t.Fatalf("input rows must not be mutated")
	}
}

func TestValidateSubmission(t *testing.T) {
	rows := []ProductRow{
		{EndTime: "2026-04-01"},
		{},
		{EndTime: "2026-05-01"},
		{},
	}
	issues := ValidateSubmission(rows)
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %+v", len(issues), issues)
	}
	if issues[0].Row != 2 || issues[1].Row != 4 {
		t.Fatalf("expected issues on rows 2 and 4, got %d and %d", issues[0].Row, issues[1].Row)
	}
	for _, issue := range issues {
		if issue.Field != FieldEndTime {
			t.Fatalf("expected field endTime, got %q", issue.Field)
		}
	}

	if issues := ValidateSubmission(rows[:1]); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}
