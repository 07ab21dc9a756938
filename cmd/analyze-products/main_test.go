package main

import (
	"path/filepath"
	"testing"

	"fashioneda/internal/feature"
)

func testdataPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestAnalyze_EndToEnd(t *testing.T) {
	derived, ds, err := analyze(testdataPath("catalog.csv"), testdataPath("details.csv"))
	if err != nil {
		t.Fatalf("analyze error: %v", err)
	}

	// 1005 has no details row and 1006 no catalog row; the duplicate 1001
	// catalog row joins and is then deduplicated.
	if derived.NumRows() != 4 {
		t.Fatalf("expected 4 rows, got %d", derived.NumRows())
	}

	byID := map[int64]map[string]any{}
	for _, r := range derived.Rows {
		byID[r[feature.ColProductID].(int64)] = r
	}
	for _, absent := range []int64{1005, 1006} {
		if _, ok := byID[absent]; ok {
			t.Fatalf("key %d must not survive the inner join", absent)
		}
	}

	if byID[1002][feature.ColPrimaryColor] != "Others" {
		t.Fatalf("missing color not filled: %#v", byID[1002][feature.ColPrimaryColor])
	}

	ranges := map[int64]string{
		1001: feature.PriceRangeLower,
		1002: feature.PriceRangeMiddle,
		1003: feature.PriceRangeLower,
		1004: feature.PriceRangeUpper,
	}
	for id, want := range ranges {
		if got := byID[id][feature.ColPriceRange]; got != want {
			t.Fatalf("product %d: price range %#v, want %q", id, got, want)
		}
	}

	// Fence over [499, 1499, 2300, 10500] flags only 10500.
	if ds.OutlierCount != 1 {
		t.Fatalf("expected 1 outlier, got %d", ds.OutlierCount)
	}
	if byID[1004][feature.ColOutlier] != true {
		t.Fatalf("product 1004 should be an outlier: %#v", byID[1004][feature.ColOutlier])
	}

	if byID[1001][feature.ColColorInDescription] != true {
		t.Fatalf("Blue should match the description: %#v", byID[1001][feature.ColColorInDescription])
	}
	if byID[1003][feature.ColAgeGroup] != "Kids" || byID[1003][feature.ColNewGender] != "Men" {
		t.Fatalf("Boys mapping wrong: %#v / %#v",
			byID[1003][feature.ColAgeGroup], byID[1003][feature.ColNewGender])
	}

	if len(ds.UnmappedGender) != 0 {
		t.Fatalf("no unmapped genders expected, got %v", ds.UnmappedGender)
	}
}

func TestAnalyze_MissingInputFails(t *testing.T) {
	if _, _, err := analyze(testdataPath("nope.csv"), testdataPath("details.csv")); err == nil {
		t.Fatal("expected error for a missing catalog file")
	}
	if _, _, err := analyze(testdataPath("catalog.csv"), testdataPath("nope.csv")); err == nil {
		t.Fatal("expected error for a missing details file")
	}
}
