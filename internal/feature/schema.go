// Package feature derives the categorical and boolean columns of the
// merged catalog table. Derivations are row-local except the outlier
// fence, which needs one full pass over the price column first.
package feature

import "fashioneda/internal/dataset"

// Column names of the two source files and of the merged, cleaned table.
const (
	ColProductID    = "ProductID"
	ColDetailID     = "ID"
	ColProductName  = "ProductName"
	ColBrand        = "ProductBrand"
	ColGender       = "Gender"
	ColRawPrice     = "Price (INR)"
	ColPrice        = "Price"
	ColNumImages    = "NumImages"
	ColDescription  = "Description"
	ColPrimaryColor = "PrimaryColor"
)

// Derived column names.
const (
	ColOutlier            = "Outlier"
	ColPriceRange         = "PriceRange"
	ColAgeGroup           = "AgeGroup"
	ColNewGender          = "NewGender"
	ColDescriptionLength  = "DescriptionLength"
	ColColorInDescription = "ColorInDescription"
	ColColorInName        = "ColorInName"
)

// Price-range labels and thresholds (INR).
const (
	PriceRangeLower  = "Lower Range"
	PriceRangeMiddle = "Middle Range"
	PriceRangeUpper  = "Upper Range"

	priceLowerMax  = 2000
	priceMiddleMax = 10000
)

// OthersColor is the placeholder the cleaner writes for a missing primary
// color. It never matches in the color-mention flags.
const OthersColor = "Others"

// CatalogSchema declares the typed columns read from the catalog CSV.
func CatalogSchema() dataset.Schema {
	return dataset.Schema{
		{Name: ColProductID, Kind: dataset.Int},
		{Name: ColProductName, Kind: dataset.String},
		{Name: ColBrand, Kind: dataset.String},
		{Name: ColGender, Kind: dataset.String},
		{Name: ColRawPrice, Kind: dataset.Float},
		{Name: ColDescription, Kind: dataset.String},
	}
}

// DetailsSchema declares the typed columns read from the details CSV.
func DetailsSchema() dataset.Schema {
	return dataset.Schema{
		{Name: ColDetailID, Kind: dataset.Int},
		{Name: ColNumImages, Kind: dataset.Int},
		{Name: ColPrimaryColor, Kind: dataset.String},
	}
}

var ageGroupByGender = map[string]string{
	"Boys":        "Kids",
	"Girls":       "Kids",
	"Unisex Kids": "Kids",
	"Men":         "Adults",
	"Women":       "Adults",
	"Unisex":      "Adults",
}

var newGenderByGender = map[string]string{
	"Men":         "Men",
	"Boys":        "Men",
	"Women":       "Women",
	"Girls":       "Women",
	"Unisex":      "Unisex",
	"Unisex Kids": "Unisex",
}
