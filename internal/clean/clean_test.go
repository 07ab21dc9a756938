package clean

import (
	"errors"
	"testing"

	"fashioneda/internal/dataset"
)

func sampleTable() dataset.Table {
	return dataset.Table{
		Schema: dataset.Schema{
			{Name: "ProductID", Kind: dataset.Int},
			{Name: "PrimaryColor", Kind: dataset.String},
			{Name: "ProductName", Kind: dataset.String},
		},
		Rows: []dataset.Row{
			{"ProductID": int64(1), "PrimaryColor": "Blue", "ProductName": " Jeans "},
			{"ProductID": int64(1), "PrimaryColor": "Blue", "ProductName": " Jeans "},
			{"ProductID": int64(2), "PrimaryColor": nil, "ProductName": "Kurta"},
			{"ProductID": int64(3), "PrimaryColor": "  ", "ProductName": "Tee"},
		},
	}
}

func TestDeduplicate_ExactRowsOnly(t *testing.T) {
	out := Deduplicate(sampleTable())
	if out.NumRows() != 3 {
		t.Fatalf("expected 3 rows after dedup, got %d", out.NumRows())
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	once := Deduplicate(sampleTable())
	twice := Deduplicate(once)
	if once.NumRows() != twice.NumRows() {
		t.Fatalf("dedup not idempotent: %d then %d rows", once.NumRows(), twice.NumRows())
	}
}

func TestFillMissing_TotalOverColor(t *testing.T) {
	out, err := FillMissing(sampleTable(), "PrimaryColor", "Others")
	if err != nil {
		t.Fatalf("FillMissing error: %v", err)
	}
	filled := 0
	for _, r := range out.Rows {
		if dataset.IsMissing(r["PrimaryColor"]) {
			t.Fatalf("row still has missing color: %#v", r)
		}
		if r["PrimaryColor"] == "Others" {
			filled++
		}
	}
	// nil and whitespace-only both count as missing.
	if filled != 2 {
		t.Fatalf("expected 2 filled rows, got %d", filled)
	}
}

func TestFillMissing_AbsentColumnIsFatal(t *testing.T) {
	var ce *dataset.ColumnError
	if _, err := FillMissing(sampleTable(), "Colour", "Others"); !errors.As(err, &ce) {
		t.Fatalf("expected ColumnError, got %v", err)
	}
}

func TestTrimSpace_StringColumnsOnly(t *testing.T) {
	out := TrimSpace(sampleTable())
	if out.Rows[0]["ProductName"] != "Jeans" {
		t.Fatalf("expected trimmed name, got %#v", out.Rows[0]["ProductName"])
	}
	if out.Rows[3]["PrimaryColor"] != nil {
		t.Fatalf("whitespace-only cell should become missing, got %#v", out.Rows[3]["PrimaryColor"])
	}
	if out.Rows[0]["ProductID"] != int64(1) {
		t.Fatalf("non-string column touched: %#v", out.Rows[0]["ProductID"])
	}
}

func TestRename_KeepsPositionAndValues(t *testing.T) {
	in := dataset.Table{
		Schema: dataset.Schema{
			{Name: "ProductID", Kind: dataset.Int},
			{Name: "Price (INR)", Kind: dataset.Float},
			{Name: "Gender", Kind: dataset.String},
		},
		Rows: []dataset.Row{{"ProductID": int64(1), "Price (INR)": 999.0, "Gender": "Men"}},
	}
	out, err := Rename(in, "Price (INR)", "Price")
	if err != nil {
		t.Fatalf("Rename error: %v", err)
	}
	if out.Schema[1].Name != "Price" || out.Schema[1].Kind != dataset.Float {
		t.Fatalf("unexpected schema after rename: %+v", out.Schema[1])
	}
	if out.Rows[0]["Price"] != 999.0 {
		t.Fatalf("value lost in rename: %#v", out.Rows[0])
	}
	if _, ok := out.Rows[0]["Price (INR)"]; ok {
		t.Fatal("old key still present after rename")
	}
	if in.Schema[1].Name != "Price (INR)" {
		t.Fatal("input table mutated")
	}
}

func TestRename_Errors(t *testing.T) {
	in := sampleTable()
	var ce *dataset.ColumnError
	if _, err := Rename(in, "Nope", "X"); !errors.As(err, &ce) {
		t.Fatalf("expected ColumnError, got %v", err)
	}
	if _, err := Rename(in, "ProductName", "ProductID"); err == nil {
		t.Fatal("expected error renaming onto an existing column")
	}
}
