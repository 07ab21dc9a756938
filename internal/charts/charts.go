// Package charts renders the analysis charts as PNG files: price
// histogram, brand and price-range bar charts, and the description-length
// vs price scatter.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"fashioneda/internal/dataset"
	"fashioneda/internal/feature"
	"fashioneda/internal/report"
	"fashioneda/internal/stats"
)

// Histogram renders a histogram of a numeric column.
func Histogram(t dataset.Table, col, title, path string) error {
	xs := t.Floats(col)
	if len(xs) == 0 {
		return fmt.Errorf("charts: no values in column %q", col)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = col
	p.Y.Label.Text = "count"
	h, err := plotter.NewHist(plotter.Values(xs), 16)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// Bar renders a labeled bar chart.
func Bar(labels []string, values []float64, title, yLabel, path string) error {
	if len(labels) == 0 || len(labels) != len(values) {
		return fmt.Errorf("charts: bad bar input: %d labels, %d values", len(labels), len(values))
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.XAlign = -0.8
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// Scatter renders one point per row where both columns are non-missing.
func Scatter(t dataset.Table, xCol, yCol, title, path string) error {
	var pts plotter.XYs
	for _, r := range t.Rows {
		x, xok := asFloat(r[xCol])
		y, yok := asFloat(r[yCol])
		if !xok || !yok {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	if len(pts) == 0 {
		return fmt.Errorf("charts: no complete pairs for %q vs %q", xCol, yCol)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xCol
	p.Y.Label.Text = yCol
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(s)
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// RenderAll writes the standard chart set for a derived table under dir
// and returns the written paths.
func RenderAll(t dataset.Table, dir string, topN int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var written []string

	path := filepath.Join(dir, "price_histogram.png")
	if err := Histogram(t, feature.ColPrice, "Price distribution (INR)", path); err != nil {
		return written, err
	}
	written = append(written, path)

	brandGroups, err := stats.GroupBy(t, feature.ColBrand, feature.ColPrice)
	if err != nil {
		return written, err
	}
	top := report.TopByCount(brandGroups, topN)
	labels := make([]string, len(top))
	counts := make([]float64, len(top))
	for i, g := range top {
		labels[i] = g.Key
		counts[i] = float64(g.Summary.Count)
	}
	path = filepath.Join(dir, "top_brands_by_count.png")
	if err := Bar(labels, counts, fmt.Sprintf("Top %d brands by product count", len(top)), "products", path); err != nil {
		return written, err
	}
	written = append(written, path)

	rangeGroups, err := stats.GroupBy(t, feature.ColPriceRange, feature.ColPrice)
	if err != nil {
		return written, err
	}
	labels = make([]string, 0, len(rangeGroups))
	counts = make([]float64, 0, len(rangeGroups))
	for _, g := range rangeGroups {
		labels = append(labels, g.Key)
		counts = append(counts, float64(g.Summary.Count))
	}
	path = filepath.Join(dir, "price_range_distribution.png")
	if err := Bar(labels, counts, "Products per price range", "products", path); err != nil {
		return written, err
	}
	written = append(written, path)

	path = filepath.Join(dir, "description_length_vs_price.png")
	if err := Scatter(t, feature.ColDescriptionLength, feature.ColPrice, "Description length vs price", path); err != nil {
		return written, err
	}
	written = append(written, path)

	return written, nil
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
