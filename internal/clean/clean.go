// Package clean implements the table-cleaning stages: exact-duplicate
// removal, default filling for the primary-color column, whitespace
// trimming, and header renaming. Every stage takes a Table and returns a
// new one.
package clean

import (
	"fmt"
	"strings"

	"fashioneda/internal/dataset"
)

// Deduplicate drops rows that are exact matches across all columns,
// keeping the first occurrence. Running it twice yields the same row count
// as running it once.
func Deduplicate(t dataset.Table) dataset.Table {
	out := dataset.Table{Schema: cloneSchema(t.Schema)}
	seen := make(map[string]struct{}, len(t.Rows))
	var sb strings.Builder
	for _, r := range t.Rows {
		sb.Reset()
		for _, c := range t.Schema {
			sb.WriteString(dataset.Format(r[c.Name]))
			sb.WriteByte(0x1f)
		}
		k := sb.String()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out.Rows = append(out.Rows, cloneRow(r))
	}
	return out
}

// FillMissing replaces missing values in col with val. The column must
// exist; its absence is a configuration error.
func FillMissing(t dataset.Table, col, val string) (dataset.Table, error) {
	if !t.Schema.Has(col) {
		return dataset.Table{}, &dataset.ColumnError{Column: col}
	}
	out := dataset.Table{Schema: cloneSchema(t.Schema)}
	for _, r := range t.Rows {
		row := cloneRow(r)
		if dataset.IsMissing(row[col]) {
			row[col] = val
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// TrimSpace trims leading and trailing whitespace from every String
// column. A cell left empty by trimming becomes missing.
func TrimSpace(t dataset.Table) dataset.Table {
	out := dataset.Table{Schema: cloneSchema(t.Schema)}
	for _, r := range t.Rows {
		row := cloneRow(r)
		for _, c := range t.Schema {
			if c.Kind != dataset.String {
				continue
			}
			if s, ok := row[c.Name].(string); ok {
				s = strings.TrimSpace(s)
				if s == "" {
					row[c.Name] = nil
				} else {
					row[c.Name] = s
				}
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Rename changes a column header, keeping its position and kind.
func Rename(t dataset.Table, oldName, newName string) (dataset.Table, error) {
	if !t.Schema.Has(oldName) {
		return dataset.Table{}, &dataset.ColumnError{Column: oldName}
	}
	if t.Schema.Has(newName) {
		return dataset.Table{}, fmt.Errorf("clean: column %q already exists", newName)
	}
	out := dataset.Table{Schema: cloneSchema(t.Schema)}
	for i, c := range out.Schema {
		if c.Name == oldName {
			out.Schema[i].Name = newName
		}
	}
	for _, r := range t.Rows {
		row := cloneRow(r)
		if v, ok := row[oldName]; ok {
			row[newName] = v
			delete(row, oldName)
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func cloneSchema(s dataset.Schema) dataset.Schema {
	return append(dataset.Schema(nil), s...)
}

func cloneRow(r dataset.Row) dataset.Row {
	out := make(dataset.Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
