// internal/catalog/view.go
package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by the shop listing
const (
	SortName      = "name"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// Query represents shop listing query parameters
type Query struct {
	Category string  `form:"category,default=all"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
	SortBy   string  `form:"sort_by,default=name"`
}

// Filter derives the visible product sequence for a shop query. It is a
// pure function of the catalog and the query: filter by category, then by
// inclusive price range, then sort. Unknown sort keys fall back to name
// order. Equal sort keys preserve catalog order.
func (c *Catalog) Filter(q Query) []Product {
	filtered := make([]Product, 0, len(c.products))

	for _, p := range c.products {
		if q.Category != "" && q.Category != "all" && string(p.Category) != q.Category {
			continue
		}
		if q.MinPrice > 0 && p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.SortBy)

	return filtered
}

func sortProducts(products []Product, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// Name order is the default and the fallback for unknown keys.
		// Collation matters for names with accents or mixed case.
		col := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
