package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"CATALOG_CSV", "DETAILS_CSV", "OUT_DIR", "TOP_N", "DEBUG"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.CatalogCSV != "data/catalog.csv" || cfg.DetailsCSV != "data/details.csv" {
		t.Fatalf("unexpected input defaults: %+v", cfg)
	}
	if cfg.OutDir != "outputs" || cfg.TopN != 10 || cfg.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CATALOG_CSV", "/tmp/a.csv")
	t.Setenv("DETAILS_CSV", "/tmp/b.csv")
	t.Setenv("OUT_DIR", "/tmp/out")
	t.Setenv("TOP_N", "5")
	t.Setenv("DEBUG", "true")
	cfg := Load()
	if cfg.CatalogCSV != "/tmp/a.csv" || cfg.DetailsCSV != "/tmp/b.csv" || cfg.OutDir != "/tmp/out" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.TopN != 5 || !cfg.Debug {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoad_BadTopNFallsBack(t *testing.T) {
	t.Setenv("TOP_N", "lots")
	if cfg := Load(); cfg.TopN != 10 {
		t.Fatalf("expected fallback 10, got %d", cfg.TopN)
	}
}
