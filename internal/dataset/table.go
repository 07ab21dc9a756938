// Package dataset holds the in-memory table model shared by every pipeline
// stage: an ordered typed schema declared once at load time, and rows as
// header-keyed maps with nil as the missing value.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the declared type of a column. Cell values are string, int64,
// float64 or bool accordingly; nil always means missing.
type Kind int

const (
	String Kind = iota
	Int
	Float
	Bool
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "string"
	}
}

// Column pairs a header name with its declared kind.
type Column struct {
	Name string
	Kind Kind
}

// Schema is the ordered column list of a table.
type Schema []Column

// Kind returns the declared kind of name.
func (s Schema) Kind(name string) (Kind, bool) {
	for _, c := range s {
		if c.Name == name {
			return c.Kind, true
		}
	}
	return String, false
}

// Has reports whether the schema declares name.
func (s Schema) Has(name string) bool {
	_, ok := s.Kind(name)
	return ok
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Name
	}
	return out
}

func (s Schema) clone() Schema {
	return append(Schema(nil), s...)
}

// Row maps column name to cell value; absent or nil entries are missing.
type Row map[string]any

func (r Row) clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is one tabular stage result. Stages never mutate a Table they were
// given; they build a new one.
type Table struct {
	Schema Schema
	Rows   []Row
}

// NumRows returns the row count.
func (t Table) NumRows() int { return len(t.Rows) }

// Floats gathers the non-missing values of a numeric column, in row order.
// Int columns are widened to float64.
func (t Table) Floats(col string) []float64 {
	out := make([]float64, 0, len(t.Rows))
	for _, r := range t.Rows {
		switch v := r[col].(type) {
		case float64:
			out = append(out, v)
		case int64:
			out = append(out, float64(v))
		}
	}
	return out
}

// Strings gathers the non-missing values of a String column, in row order.
func (t Table) Strings(col string) []string {
	out := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		if s, ok := r[col].(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// ColumnError reports an operation against a column the schema does not
// declare. Absence of an expected column is a configuration error and is
// fatal to the run.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("dataset: no such column %q", e.Column)
}

// RowError reports a malformed CSV row: wrong field count or a cell that
// does not parse as its declared kind.
type RowError struct {
	Path string
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Format renders a cell for reports, CSV output and dedup keys. Missing
// values render empty; floats keep a trailing .0 when integral, matching
// the source dataset's exports.
func Format(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if math.IsNaN(t) {
			return ""
		}
		s := strconv.FormatFloat(t, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(t)
	}
}

// IsMissing reports whether a cell counts as missing: nil, or a string that
// is empty after trimming.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
