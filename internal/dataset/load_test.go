package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var catalogSchema = Schema{
	{Name: "ProductID", Kind: Int},
	{Name: "ProductName", Kind: String},
	{Name: "ProductBrand", Kind: String},
	{Name: "Gender", Kind: String},
	{Name: "Price (INR)", Kind: Float},
	{Name: "Description", Kind: String},
}

var detailsSchema = Schema{
	{Name: "ID", Kind: Int},
	{Name: "NumImages", Kind: Int},
	{Name: "PrimaryColor", Kind: String},
}

func TestLoad_TypedCells(t *testing.T) {
	tbl, err := Load(filepath.Join("testdata", "catalog.csv"), catalogSchema)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if tbl.NumRows() != 5 {
		t.Fatalf("expected 5 rows, got %d", tbl.NumRows())
	}
	r := tbl.Rows[0]
	if id, ok := r["ProductID"].(int64); !ok || id != 1001 {
		t.Fatalf("ProductID not parsed as int64: %#v", r["ProductID"])
	}
	if p, ok := r["Price (INR)"].(float64); !ok || p != 1499 {
		t.Fatalf("price not parsed as float64: %#v", r["Price (INR)"])
	}
	if name, ok := r["ProductName"].(string); !ok || name != "Blue Slim Jeans" {
		t.Fatalf("unexpected ProductName: %#v", r["ProductName"])
	}
}

func TestLoad_EmptyCellIsMissing(t *testing.T) {
	tbl, err := Load(filepath.Join("testdata", "details.csv"), detailsSchema)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if tbl.Rows[1]["PrimaryColor"] != nil {
		t.Fatalf("expected nil PrimaryColor for row 1002, got %#v", tbl.Rows[1]["PrimaryColor"])
	}
	if tbl.Rows[0]["PrimaryColor"] != "Blue" {
		t.Fatalf("expected Blue, got %#v", tbl.Rows[0]["PrimaryColor"])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.csv"), catalogSchema)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoad_MissingSchemaColumn(t *testing.T) {
	schema := append(detailsSchema.clone(), Column{Name: "NoSuch", Kind: String})
	_, err := Load(filepath.Join("testdata", "details.csv"), schema)
	var ce *ColumnError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ColumnError, got %v", err)
	}
	if ce.Column != "NoSuch" {
		t.Fatalf("unexpected column in error: %q", ce.Column)
	}
}

func TestLoad_InconsistentFieldCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	data := "ID,NumImages,PrimaryColor\n1,2,Red\n2,3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path, detailsSchema)
	var re *RowError
	if !errors.As(err, &re) {
		t.Fatalf("expected RowError, got %v", err)
	}
	if re.Line != 3 {
		t.Fatalf("expected failure on line 3, got %d", re.Line)
	}
}

func TestLoad_UnparseableTypedCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	data := "ID,NumImages,PrimaryColor\nabc,2,Red\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path, detailsSchema)
	var re *RowError
	if !errors.As(err, &re) {
		t.Fatalf("expected RowError, got %v", err)
	}
}

func TestFormat_FloatKeepsTrailingZero(t *testing.T) {
	if got := Format(float64(5)); got != "5.0" {
		t.Fatalf("expected 5.0, got %q", got)
	}
	if got := Format(12.5); got != "12.5" {
		t.Fatalf("expected 12.5, got %q", got)
	}
	if got := Format(nil); got != "" {
		t.Fatalf("expected empty for nil, got %q", got)
	}
	if got := Format(true); got != "True" {
		t.Fatalf("expected True, got %q", got)
	}
}
