package form

import (
	"reflect"
	"testing"
)

func TestDeriveRowComputesLocalFromUSDAndRate(t *testing.T) {
	row := ProductRow{HKUsd: "100"}
	row = DeriveRow(row, FieldHKUsd)
	if row.HKHkd != "" {
		t.Fatalf("expected no derivation with one value, got hkHkd=%q", row.HKHkd)
	}

	if err := row.SetField(FieldHKXe, "7.8"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	row = DeriveRow(row, FieldHKXe)
	if row.HKHkd != "780.00" {
		t.Fatalf("expected hkHkd=780.00, got %q", row.HKHkd)
	}
	if row.HKUsd != "100" || row.HKXe != "7.8" {
		t.Fatalf("inputs should be untouched, got usd=%q xe=%q", row.HKUsd, row.HKXe)
	}
}

func TestDeriveRowNeverOverwritesEditedField(t *testing.T) {
	row := ProductRow{HKHkd: "780.00"}
	if err := row.SetField(FieldHKXe, "7.5"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	row = DeriveRow(row, FieldHKXe)
	if row.HKXe != "7.5" {
		t.Fatalf("edited field must keep user value, got %q", row.HKXe)
	}
	if row.HKUsd != "104.00" {
		t.Fatalf("expected hkUsd=104.00, got %q", row.HKUsd)
	}
	if row.HKHkd != "780.00" {
		t.Fatalf("hkHkd should be untouched, got %q", row.HKHkd)
	}
}

func TestDeriveRowRecomputesLocalWhenAllThreePresent(t *testing.T) {
	row := ProductRow{HKUsd: "100", HKXe: "7.8", HKHkd: "780.00"}
	if err := row.SetField(FieldHKUsd, "200"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	row = DeriveRow(row, FieldHKUsd)
	if row.HKHkd != "1560.00" {
		t.Fatalf("expected hkHkd=1560.00, got %q", row.HKHkd)
	}
	if row.HKXe != "7.8" {
		t.Fatalf("rate should be untouched, got %q", row.HKXe)
	}
}

func TestDeriveRowComputesRateFromBothAmounts(t *testing.T) {
	row := ProductRow{DubaiUsd: "100"}
	if err := row.SetField(FieldDubaiAed, "367.25"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	row = DeriveRow(row, FieldDubaiAed)
	if row.DubaiXe != "3.6725" {
		t.Fatalf("expected dubaiXe=3.6725, got %q", row.DubaiXe)
	}
}

func TestDeriveRowIgnoresNonNumericValues(t *testing.T) {
	row := ProductRow{HKUsd: "abc", HKXe: "7.8"}
	row = DeriveRow(row, FieldHKXe)
	if row.HKHkd != "" {
		t.Fatalf("non-numeric usd must count as absent, got hkHkd=%q", row.HKHkd)
	}

	row = ProductRow{HKUsd: "100", HKXe: "0"}
	row = DeriveRow(row, FieldHKXe)
	if row.HKHkd != "" {
		t.Fatalf("zero rate must count as absent, got hkHkd=%q", row.HKHkd)
	}
}

func TestDeriveRowIsIdempotent(t *testing.T) {
	row := ProductRow{HKUsd: "100", HKXe: "7.8"}
	once := DeriveRow(row, FieldHKXe)
	twice := DeriveRow(once, FieldHKXe)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second derivation changed the row: %+v vs %+v", once, twice)
	}
}

func TestDeriveRowLeavesOtherRegionAlone(t *testing.T) {
	row := ProductRow{HKUsd: "100", HKXe: "7.8", DubaiUsd: "100", DubaiXe: "3.67"}
	row = DeriveRow(row, FieldHKXe)
	if row.HKHkd != "780.00" {
		t.Fatalf("expected hkHkd=780.00, got %q", row.HKHkd)
	}
	if row.DubaiAed != "" {
		t.Fatalf("dubai triple must not be solved on a hk edit, got %q", row.DubaiAed)
	}
}

func TestDeriveDeliveryLocations(t *testing.T) {
	cases := []struct {
		name string
		row  ProductRow
		want []string
	}{
		{"none", ProductRow{}, []string{}},
		{"hk only", ProductRow{HKUsd: "100"}, []string{"HK"}},
		{"dubai only", ProductRow{DubaiAed: "367.25"}, []string{"DXB"}},
		{"both ordered", ProductRow{DubaiUsd: "100", HKHkd: "780"}, []string{"HK", "DXB"}},
		{"zero amount excluded", ProductRow{HKUsd: "0", DubaiUsd: "0.00"}, []string{}},
		{"free text counts", ProductRow{HKUsd: "TBD"}, []string{"HK"}},
	}
	for _, tc := range cases {
		got := deriveDeliveryLocations(tc.row)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestSetFieldRejectsDerivedAndUnknownFields(t *testing.T) {
	row := ProductRow{}
	if err := row.SetField(FieldDeliveryLocations, "HK"); err != ErrFieldNotEditable {
		t.Fatalf("expected ErrFieldNotEditable, got %v", err)
	}
	if err := row.SetField("noSuchField", "x"); err != ErrUnknownField {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSetFieldUniqueListingNoIsWriteOnce(t *testing.T) {
	row := ProductRow{}
	if err := row.SetField(FieldUniqueListingNo, "ULN-1"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if err := row.SetField(FieldUniqueListingNo, "ULN-2"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if row.UniqueListingNo != "ULN-1" {
		t.Fatalf("uniqueListingNo must keep first value, got %q", row.UniqueListingNo)
	}
}

func TestSetFieldSplitsSetValues(t *testing.T) {
	row := ProductRow{}
	if err := row.SetField(FieldPaymentTerms, "TT, LC , "); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if !reflect.DeepEqual(row.PaymentTerms, []string{"TT", "LC"}) {
		t.Fatalf("expected [TT LC], got %v", row.PaymentTerms)
	}
}
