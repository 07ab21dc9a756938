// Package report renders the profiling report over the cleaned and
// derived catalog table: dataset shape, missingness, numeric and
// categorical summaries, correlations and ranked top-N tables. Reporting
// is read-only over its input.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"fashioneda/internal/dataset"
	"fashioneda/internal/feature"
	"fashioneda/internal/stats"
)

// Params configures one report build.
type Params struct {
	RunID string
	TopN  int
}

// Build renders the profile markdown for a derived table.
func Build(t dataset.Table, ds feature.DeriveStats, p Params) (string, error) {
	if p.TopN <= 0 {
		p.TopN = 10
	}
	lines := []string{
		"# Fashion catalog profiling report",
		"",
		fmt.Sprintf("- Run: %s", p.RunID),
		"",
		"## Dataset shape",
		fmt.Sprintf("- Rows: %s", fmtInt(t.NumRows())),
		fmt.Sprintf("- Columns: %s", fmtInt(len(t.Schema))),
		fmt.Sprintf("- Price outliers (IQR fence): %s", fmtInt(ds.OutlierCount)),
		fmt.Sprintf("- Rows with unmapped gender: %s", fmtInt(sumCounts(ds.UnmappedGender))),
		"",
	}

	lines = append(lines, "## Missingness")
	for _, c := range t.Schema {
		nulls := 0
		for _, r := range t.Rows {
			if dataset.IsMissing(r[c.Name]) {
				nulls++
			}
		}
		pct := 0.0
		if t.NumRows() > 0 {
			pct = float64(nulls) * 100 / float64(t.NumRows())
		}
		lines = append(lines, fmt.Sprintf("- `%s`: %.1f%% null", c.Name, pct))
	}
	lines = append(lines, "")

	lines = append(lines, "## Numeric summaries")
	for _, col := range []string{feature.ColPrice, feature.ColNumImages, feature.ColDescriptionLength} {
		s, ok := stats.Describe(t, col)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf(
			"- `%s`: count=%s, mean=%s, median=%s, min=%s, max=%s, std=%s, sum=%s, p25=%s, p75=%s",
			col, fmtInt(s.Count), fmt4g(s.Mean), fmt4g(s.Median), fmt4g(s.Min), fmt4g(s.Max),
			fmt4g(s.StdDev), fmt4g(s.Sum), fmt4g(s.P25), fmt4g(s.P75),
		))
	}
	lines = append(lines, "")

	lines = append(lines, "## Categorical summaries")
	for _, col := range []string{
		feature.ColBrand, feature.ColGender, feature.ColPrimaryColor,
		feature.ColAgeGroup, feature.ColNewGender, feature.ColPriceRange,
	} {
		c, ok := stats.DescribeCategorical(t, col)
		if !ok {
			lines = append(lines, fmt.Sprintf("- `%s`: all missing", col))
			continue
		}
		lines = append(lines, fmt.Sprintf("- `%s`: count=%s, distinct=%s, mode=%s (%s)",
			col, fmtInt(c.Count), fmtInt(c.Distinct), c.Mode, fmtInt(c.ModeCount)))
	}
	lines = append(lines, "")

	for _, key := range []string{feature.ColGender, feature.ColAgeGroup, feature.ColPriceRange} {
		groups, err := stats.GroupBy(t, key, feature.ColPrice)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("## Price by %s", key))
		for _, g := range groups {
			lines = append(lines, fmt.Sprintf("- %s: count=%s, mean=%s, median=%s, min=%s, max=%s",
				g.Key, fmtInt(g.Summary.Count), fmt4g(g.Summary.Mean), fmt4g(g.Summary.Median),
				fmt4g(g.Summary.Min), fmt4g(g.Summary.Max)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## Correlations")
	for _, pair := range [][2]string{
		{feature.ColDescriptionLength, feature.ColPrice},
		{feature.ColDescriptionLength, feature.ColNumImages},
	} {
		r, n, ok := stats.Pearson(t, pair[0], pair[1])
		if !ok {
			lines = append(lines, fmt.Sprintf("- `%s` vs `%s`: not computable (%s complete pairs)",
				pair[0], pair[1], fmtInt(n)))
			continue
		}
		lines = append(lines, fmt.Sprintf("- `%s` vs `%s`: r=%s over %s rows",
			pair[0], pair[1], fmt4g(r), fmtInt(n)))
	}
	lines = append(lines, "")

	brandGroups, err := stats.GroupBy(t, feature.ColBrand, feature.ColPrice)
	if err != nil {
		return "", err
	}
	lines = append(lines, fmt.Sprintf("## Top %d brands by mean price", p.TopN))
	for _, g := range TopByMean(brandGroups, p.TopN) {
		lines = append(lines, fmt.Sprintf("- %s: mean=%s (%s products)",
			g.Key, fmt4g(g.Summary.Mean), fmtInt(g.Summary.Count)))
	}
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("## Top %d brands by product count", p.TopN))
	for _, g := range TopByCount(brandGroups, p.TopN) {
		lines = append(lines, fmt.Sprintf("- %s: %s products", g.Key, fmtInt(g.Summary.Count)))
	}
	lines = append(lines, "")

	if len(ds.UnmappedGender) > 0 {
		lines = append(lines, "## Unmapped gender values")
		keys := make([]string, 0, len(ds.UnmappedGender))
		for k := range ds.UnmappedGender {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			label := k
			if label == "" {
				label = "<missing>"
			}
			lines = append(lines, fmt.Sprintf("- %s: %s rows", label, fmtInt(ds.UnmappedGender[k])))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n"), nil
}

// TopByMean returns the n groups with the highest mean, ties broken by
// key. Input order is preserved; a copy is sorted.
func TopByMean(groups []stats.Group, n int) []stats.Group {
	out := append([]stats.Group(nil), groups...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Summary.Mean != out[j].Summary.Mean {
			return out[i].Summary.Mean > out[j].Summary.Mean
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TopByCount returns the n largest groups, ties broken by key.
func TopByCount(groups []stats.Group, n int) []stats.Group {
	out := append([]stats.Group(nil), groups...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Summary.Count != out[j].Summary.Count {
			return out[i].Summary.Count > out[j].Summary.Count
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func sumCounts(m map[string]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}

func fmtInt(v int) string {
	s := strconv.Itoa(v)
	n := len(s)
	if n <= 3 {
		return s
	}
	var parts []string
	for n > 3 {
		parts = append([]string{s[n-3:]}, parts...)
		s = s[:n-3]
		n = len(s)
	}
	if s != "" {
		parts = append([]string{s}, parts...)
	}
	return strings.Join(parts, ",")
}

func fmt4g(v float64) string { return strconv.FormatFloat(v, 'g', 4, 64) }
