// Package config collects runtime configuration from the environment, with
// an optional .env file. Flags on the CLI override these values.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the pipeline's knobs.
type Config struct {
	CatalogCSV string
	DetailsCSV string
	OutDir     string
	TopN       int
	Debug      bool
}

// Load reads configuration from the environment with defaults.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		CatalogCSV: getenv("CATALOG_CSV", "data/catalog.csv"),
		DetailsCSV: getenv("DETAILS_CSV", "data/details.csv"),
		OutDir:     getenv("OUT_DIR", "outputs"),
		TopN:       atoienv("TOP_N", 10),
		Debug:      os.Getenv("DEBUG") == "true",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
