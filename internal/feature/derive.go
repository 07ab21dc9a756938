package feature

import (
	"strings"

	"fashioneda/internal/dataset"
	"fashioneda/internal/stats"
)

// DeriveStats reports what the derivation pass observed: how many rows
// carried a gender outside the mapped sets (and which values), and how
// many prices fell outside the IQR fence.
type DeriveStats struct {
	UnmappedGender map[string]int
	OutlierCount   int
}

// Derive appends the derived columns to a cleaned table and returns the
// new table. Gender values outside the mapped sets produce missing
// AgeGroup/NewGender cells and are counted in DeriveStats so the caller
// can surface them; they are not fatal.
func Derive(t dataset.Table) (dataset.Table, DeriveStats, error) {
	for _, col := range []string{ColPrice, ColGender, ColPrimaryColor, ColProductName, ColDescription} {
		if !t.Schema.Has(col) {
			return dataset.Table{}, DeriveStats{}, &dataset.ColumnError{Column: col}
		}
	}

	q1, q3, haveFence := stats.Quartiles(t, ColPrice)
	iqr := q3 - q1
	loFence, hiFence := q1-1.5*iqr, q3+1.5*iqr

	out := dataset.Table{Schema: append(dataset.Schema(nil), t.Schema...)}
	out.Schema = append(out.Schema,
		dataset.Column{Name: ColOutlier, Kind: dataset.Bool},
		dataset.Column{Name: ColPriceRange, Kind: dataset.String},
		dataset.Column{Name: ColAgeGroup, Kind: dataset.String},
		dataset.Column{Name: ColNewGender, Kind: dataset.String},
		dataset.Column{Name: ColDescriptionLength, Kind: dataset.Int},
		dataset.Column{Name: ColColorInDescription, Kind: dataset.Bool},
		dataset.Column{Name: ColColorInName, Kind: dataset.Bool},
	)

	ds := DeriveStats{UnmappedGender: map[string]int{}}
	for _, r := range t.Rows {
		row := make(dataset.Row, len(r)+7)
		for k, v := range r {
			row[k] = v
		}

		if price, ok := asFloat(r[ColPrice]); ok {
			row[ColPriceRange] = priceRange(price)
			if haveFence {
				outlier := price < loFence || price > hiFence
				row[ColOutlier] = outlier
				if outlier {
					ds.OutlierCount++
				}
			} else {
				row[ColOutlier] = nil
			}
		} else {
			row[ColPriceRange] = nil
			row[ColOutlier] = nil
		}

		if g, ok := r[ColGender].(string); ok {
			age, ageOK := ageGroupByGender[g]
			ng, ngOK := newGenderByGender[g]
			if !ageOK || !ngOK {
				ds.UnmappedGender[g]++
			}
			row[ColAgeGroup] = missingUnless(age, ageOK)
			row[ColNewGender] = missingUnless(ng, ngOK)
		} else {
			ds.UnmappedGender[""]++
			row[ColAgeGroup] = nil
			row[ColNewGender] = nil
		}

		if desc, ok := r[ColDescription].(string); ok {
			row[ColDescriptionLength] = int64(len(desc))
		} else {
			row[ColDescriptionLength] = nil
		}

		row[ColColorInDescription] = colorMention(r[ColPrimaryColor], r[ColDescription])
		row[ColColorInName] = colorMention(r[ColPrimaryColor], r[ColProductName])

		out.Rows = append(out.Rows, row)
	}
	return out, ds, nil
}

func priceRange(price float64) string {
	switch {
	case price <= priceLowerMax:
		return PriceRangeLower
	case price <= priceMiddleMax:
		return PriceRangeMiddle
	default:
		return PriceRangeUpper
	}
}

// colorMention reports whether the primary color is mentioned in the text,
// matched case-insensitively. The "Others" fill placeholder never matches,
// and a missing operand yields a missing flag.
func colorMention(color, text any) any {
	c, cok := color.(string)
	s, sok := text.(string)
	if !cok || !sok {
		return nil
	}
	if c == OthersColor {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(c))
}

func missingUnless(v string, ok bool) any {
	if !ok {
		return nil
	}
	return v
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
