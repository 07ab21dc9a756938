// Command analyze-products runs the catalog EDA pipeline: load the two
// CSV sources, inner-join them on the product identifier, clean, derive
// the categorical features, then write the profile report, charts and the
// SQLite artifact.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fashioneda/internal/charts"
	"fashioneda/internal/clean"
	"fashioneda/internal/config"
	"fashioneda/internal/dataset"
	"fashioneda/internal/export"
	"fashioneda/internal/feature"
	"fashioneda/internal/obs"
	"fashioneda/internal/report"
)

func main() {
	cfg := config.Load()
	catalogPath := flag.String("catalog", cfg.CatalogCSV, "Catalog CSV path")
	detailsPath := flag.String("details", cfg.DetailsCSV, "Details CSV path")
	outDir := flag.String("out-dir", cfg.OutDir, "Output directory")
	topN := flag.Int("top", cfg.TopN, "Ranked-table size")
	withCharts := flag.Bool("charts", true, "Render chart PNGs")
	withSQLite := flag.Bool("sqlite", true, "Write the SQLite artifact")
	flag.Parse()

	obs.Init(cfg.Debug)
	runID := uuid.New().String()
	logger := log.With().Str("run_id", runID).Logger()

	derived, ds, err := analyze(*catalogPath, *detailsPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("pipeline stage failed")
	}
	if len(ds.UnmappedGender) > 0 {
		logger.Warn().Interface("values", ds.UnmappedGender).Msg("gender values outside the mapped sets")
	}
	logger.Info().Int("rows", derived.NumRows()).Int("outliers", ds.OutlierCount).Msg("features derived")

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal().Err(err).Msg("prepare output dir")
	}

	md, err := report.Build(derived, ds, report.Params{RunID: runID, TopN: *topN})
	if err != nil {
		logger.Fatal().Err(err).Msg("build report")
	}
	fmt.Println(md)
	profilePath := filepath.Join(*outDir, "catalog_profile.md")
	if err := os.WriteFile(profilePath, []byte(md+"\n"), 0o644); err != nil {
		logger.Fatal().Err(err).Msg("write report")
	}

	if *withCharts {
		written, err := charts.RenderAll(derived, *outDir, *topN)
		if err != nil {
			logger.Fatal().Err(err).Msg("render charts")
		}
		logger.Info().Strs("files", written).Msg("charts rendered")
	}

	sqlitePath := filepath.Join(*outDir, "catalog_cleaned.sqlite")
	if *withSQLite {
		if err := export.SQLite(derived, sqlitePath); err != nil {
			logger.Fatal().Err(err).Msg("export sqlite")
		}
		logger.Info().Str("path", sqlitePath).Msg("artifact written")
	}

	fmt.Printf("Rows analyzed: %d\n", derived.NumRows())
	fmt.Printf("Profile: %s\n", profilePath)
	if *withSQLite {
		fmt.Printf("SQLite: %s\n", sqlitePath)
	}
}

// analyze runs the in-memory stages: load both sources, merge, clean and
// derive. Errors are prefixed with the failing stage.
func analyze(catalogPath, detailsPath string) (dataset.Table, feature.DeriveStats, error) {
	catalog, err := dataset.Load(catalogPath, feature.CatalogSchema())
	if err != nil {
		return dataset.Table{}, feature.DeriveStats{}, fmt.Errorf("load catalog: %w", err)
	}
	details, err := dataset.Load(detailsPath, feature.DetailsSchema())
	if err != nil {
		return dataset.Table{}, feature.DeriveStats{}, fmt.Errorf("load details: %w", err)
	}
	log.Info().Int("catalog_rows", catalog.NumRows()).Int("details_rows", details.NumRows()).Msg("sources loaded")

	merged, err := dataset.InnerJoin(catalog, details, feature.ColProductID, feature.ColDetailID)
	if err != nil {
		return dataset.Table{}, feature.DeriveStats{}, fmt.Errorf("merge: %w", err)
	}
	log.Info().Int("rows", merged.NumRows()).Msg("tables merged")

	tbl := clean.Deduplicate(merged)
	log.Info().Int("dropped", merged.NumRows()-tbl.NumRows()).Msg("duplicates removed")
	tbl, err = clean.FillMissing(tbl, feature.ColPrimaryColor, feature.OthersColor)
	if err != nil {
		return dataset.Table{}, feature.DeriveStats{}, fmt.Errorf("clean: %w", err)
	}
	tbl = clean.TrimSpace(tbl)
	tbl, err = clean.Rename(tbl, feature.ColRawPrice, feature.ColPrice)
	if err != nil {
		return dataset.Table{}, feature.DeriveStats{}, fmt.Errorf("clean: %w", err)
	}

	derived, ds, err := feature.Derive(tbl)
	if err != nil {
		return dataset.Table{}, feature.DeriveStats{}, fmt.Errorf("derive: %w", err)
	}
	return derived, ds, nil
}
