// Package stats computes the descriptive statistics the reporter consumes:
// numeric summaries, categorical summaries, group-by partitions and
// Pearson correlations. Missing cells are skipped everywhere.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"fashioneda/internal/dataset"
)

// Summary is the full numeric description of one column or group.
// Variance is the sample variance (n-1 denominator).
type Summary struct {
	Count    int
	Mean     float64
	Median   float64
	Min      float64
	Max      float64
	Variance float64
	StdDev   float64
	Sum      float64
	P25      float64
	P75      float64
}

// Describe summarizes the non-missing values of a numeric column. ok is
// false when the column has no values at all.
func Describe(t dataset.Table, col string) (Summary, bool) {
	return describe(t.Floats(col))
}

func describe(xs []float64) (Summary, bool) {
	if len(xs) == 0 {
		return Summary{}, false
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	s := Summary{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Median: Quantile(sorted, 0.5),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Sum:    floats.Sum(xs),
		P25:    Quantile(sorted, 0.25),
		P75:    Quantile(sorted, 0.75),
	}
	if len(xs) > 1 {
		s.Variance = stat.Variance(xs, nil)
		s.StdDev = math.Sqrt(s.Variance)
	}
	return s, true
}

// Quantile returns the p-quantile of sorted values with linear
// interpolation between order statistics (h = p*(n-1)), the method the
// source dataset's numbers were produced with. gonum's Quantile kinds
// interpolate the empirical CDF instead and give a different median, so
// this one is computed directly.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Quartiles returns Q1 and Q3 of a column's non-missing values. ok is
// false when the column is empty.
func Quartiles(t dataset.Table, col string) (q1, q3 float64, ok bool) {
	xs := t.Floats(col)
	if len(xs) == 0 {
		return 0, 0, false
	}
	sort.Float64s(xs)
	return Quantile(xs, 0.25), Quantile(xs, 0.75), true
}

// Categorical summarizes a String column: non-missing count, distinct
// count and the mode with its frequency. Ties break lexicographically.
type Categorical struct {
	Count     int
	Distinct  int
	Mode      string
	ModeCount int
}

// DescribeCategorical summarizes the non-missing values of a String
// column. ok is false when every cell is missing.
func DescribeCategorical(t dataset.Table, col string) (Categorical, bool) {
	counts := map[string]int{}
	total := 0
	for _, r := range t.Rows {
		if dataset.IsMissing(r[col]) {
			continue
		}
		counts[dataset.Format(r[col])]++
		total++
	}
	if total == 0 {
		return Categorical{}, false
	}
	c := Categorical{Count: total, Distinct: len(counts)}
	for v, n := range counts {
		if n > c.ModeCount || (n == c.ModeCount && v < c.Mode) {
			c.Mode, c.ModeCount = v, n
		}
	}
	return c, true
}

// Group is one group-by bucket: the key value and the numeric summary of
// the value column within it.
type Group struct {
	Key     string
	Summary Summary
}

// GroupBy partitions rows by keyCol and describes valCol within each
// group. Rows with a missing key are skipped, and groups with no
// non-missing values emit nothing, so no empty group is ever summarized.
// Groups come back sorted by key.
func GroupBy(t dataset.Table, keyCol, valCol string) ([]Group, error) {
	if !t.Schema.Has(keyCol) {
		return nil, &dataset.ColumnError{Column: keyCol}
	}
	if !t.Schema.Has(valCol) {
		return nil, &dataset.ColumnError{Column: valCol}
	}
	buckets := map[string][]float64{}
	for _, r := range t.Rows {
		if dataset.IsMissing(r[keyCol]) {
			continue
		}
		k := dataset.Format(r[keyCol])
		switch v := r[valCol].(type) {
		case float64:
			buckets[k] = append(buckets[k], v)
		case int64:
			buckets[k] = append(buckets[k], float64(v))
		}
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Group, 0, len(keys))
	for _, k := range keys {
		s, ok := describe(buckets[k])
		if !ok {
			continue
		}
		out = append(out, Group{Key: k, Summary: s})
	}
	return out, nil
}

// Pearson computes the correlation between two numeric columns over rows
// where neither operand is missing. ok is false with fewer than two
// complete pairs or when either side has zero variance.
func Pearson(t dataset.Table, xCol, yCol string) (r float64, n int, ok bool) {
	var xs, ys []float64
	for _, row := range t.Rows {
		x, xok := asFloat(row[xCol])
		y, yok := asFloat(row[yCol])
		if !xok || !yok {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) < 2 {
		return 0, len(xs), false
	}
	r = stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, len(xs), false
	}
	return r, len(xs), true
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
