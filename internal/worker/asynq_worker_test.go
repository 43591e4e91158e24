package worker

import (
	"strings"
	"testing"

	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
)

func TestBuildBatchSummaryEmpty(t *testing.T) {
	if got := buildBatchSummary(nil); got != "" {
		t.Fatalf("expected empty summary for no listings, got %q", got)
	}
}

func TestBuildBatchSummaryLines(t *testing.T) {
	listings := []models.Listing{
		{
			SubModelName:      "iPhone 15 Pro",
			Storage:           "256GB",
			Colour:            "Black",
			DeliveryLocations: models.StringArray{"HK", "DXB"},
			UniqueListingNo:   "ULN-1",
		},
		{
			Storage:         "512GB",
			Colour:          "Natural",
			UniqueListingNo: "ULN-2",
		},
	}

	got := buildBatchSummary(listings)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 summary lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "iPhone 15 Pro 256GB Black [HK/DXB] ULN-1" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "(unnamed) 512GB Natural [-] ULN-2" {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}
