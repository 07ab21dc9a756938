// Package export writes the cleaned and derived table to a SQLite
// analysis artifact.
package export

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"fashioneda/internal/dataset"
	"fashioneda/internal/feature"
)

// TableName is the single table the artifact carries.
const TableName = "catalog_cleaned"

// SQLite writes the table to path, replacing any existing file. Column
// types follow the schema: Int and Bool as INTEGER, Float as REAL, String
// as TEXT. Bools are stored as 0/1, missing cells as NULL.
func SQLite(t dataset.Table, path string) error {
	_ = os.Remove(path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	defs := make([]string, len(t.Schema))
	for i, c := range t.Schema {
		defs[i] = fmt.Sprintf("%q %s", c.Name, sqlType(c.Kind))
	}
	if _, err := db.Exec(fmt.Sprintf("CREATE TABLE %q (%s)", TableName, strings.Join(defs, ","))); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	cols := make([]string, len(t.Schema))
	ph := make([]string, len(t.Schema))
	for i, c := range t.Schema {
		cols[i] = fmt.Sprintf("%q", c.Name)
		ph[i] = "?"
	}
	stmt, err := db.Prepare(fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		TableName, strings.Join(cols, ","), strings.Join(ph, ",")))
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range t.Rows {
		args := make([]any, len(t.Schema))
		for i, c := range t.Schema {
			args[i] = sqliteValue(r[c.Name])
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	for _, col := range []string{feature.ColProductID, feature.ColBrand, feature.ColGender} {
		if !t.Schema.Has(col) {
			continue
		}
		idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_%s ON %q(%q)",
			TableName, strings.ToLower(col), TableName, col)
		if _, err := db.Exec(idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

func sqlType(k dataset.Kind) string {
	switch k {
	case dataset.Int, dataset.Bool:
		return "INTEGER"
	case dataset.Float:
		return "REAL"
	default:
		return "TEXT"
	}
}

func sqliteValue(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return v
}
