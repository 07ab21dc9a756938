package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Load reads a CSV file into a Table using the declared schema. The header
// row is required; columns present in the file but absent from the schema
// are ignored, and a schema column missing from the header is a
// ColumnError. Empty cells become nil. A record with the wrong field count
// or an unparseable typed cell is a RowError.
func Load(path string, schema Schema) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Table{}, err
	}
	b = bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})

	r := csv.NewReader(bytes.NewReader(b))
	header, err := r.Read()
	if err != nil {
		return Table{}, fmt.Errorf("%s: read header: %w", path, err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	colIdx := make([]int, len(schema))
	for i, c := range schema {
		j, ok := idx[c.Name]
		if !ok {
			return Table{}, &ColumnError{Column: c.Name}
		}
		colIdx[i] = j
	}

	t := Table{Schema: schema.clone()}
	line := 1
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			// encoding/csv pins the record length to the header length, so
			// an inconsistent column count surfaces here.
			return Table{}, &RowError{Path: path, Line: line, Err: err}
		}
		row := make(Row, len(schema))
		for i, c := range schema {
			v, err := parseCell(rec[colIdx[i]], c.Kind)
			if err != nil {
				return Table{}, &RowError{Path: path, Line: line, Err: fmt.Errorf("column %q: %w", c.Name, err)}
			}
			row[c.Name] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func parseCell(raw string, kind Kind) (any, error) {
	if raw == "" {
		return nil, nil
	}
	switch kind {
	case Int:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse int %q", raw)
		}
		return n, nil
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parse float %q", raw)
		}
		return f, nil
	case Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parse bool %q", raw)
		}
		return b, nil
	default:
		return raw, nil
	}
}
