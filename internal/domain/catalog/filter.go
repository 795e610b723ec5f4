package catalog

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPageSize is the number of products per catalog page.
const DefaultPageSize = 12

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// Filters narrows the product set. Zero values mean "no restriction".
type Filters struct {
	Category    string          `json:"category,omitempty"`
	PriceMax    decimal.Decimal `json:"price_max,omitempty"`
	Colors      []string        `json:"colors,omitempty"`
	Sizes       []string        `json:"sizes,omitempty"`
	InStockOnly bool            `json:"in_stock_only,omitempty"`
	OnSaleOnly  bool            `json:"on_sale_only,omitempty"`
}

// Result is one page of the derived catalog view.
type Result struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

// Matches reports whether a product passes all active filters.
func (f Filters) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if !f.PriceMax.IsZero() && p.Price.GreaterThan(f.PriceMax) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(f.Colors, p.Options["color"]) {
		return false
	}
	if len(f.Sizes) > 0 && !intersects(f.Sizes, p.Options["size"]) {
		return false
	}
	if f.InStockOnly && !p.InStock {
		return false
	}
	if f.OnSaleOnly && !p.OnSale() {
		return false
	}
	return true
}

func intersects(wanted, allowed []string) bool {
	for _, w := range wanted {
		for _, a := range allowed {
			if w == a {
				return true
			}
		}
	}
	return false
}

// Browse runs the fixed filter → sort → paginate pipeline and returns the
// requested page plus the total matching count. An empty result is a valid
// terminal state, not an error.
func (c *Catalog) Browse(filters Filters, key SortKey, page, pageSize int) Result {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	var matched []Product
	for _, p := range c.products {
		if filters.Matches(p) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, key)

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Products:   matched[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortName:
		cl := collate.New(language.German)
		sort.SliceStable(products, func(i, j int) bool {
			return cl.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return newerThan(products[i].ID, products[j].ID)
		})
	}
}

// newerThan orders ids descending, numerically when both parse as integers
// and byte-wise otherwise.
func newerThan(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na > nb
	}
	return a > b
}

// Ellipsis marks a collapsed gap in a page number sequence.
const Ellipsis = -1

// PageNumbers returns the page items to render: first and last page, the
// current page with two neighbors on each side, gaps collapsed to Ellipsis.
func PageNumbers(current, totalPages int) []int {
	if totalPages <= 1 {
		return nil
	}

	var pages []int
	for i := 1; i <= totalPages; i++ {
		switch {
		case i == 1 || i == totalPages || (i >= current-2 && i <= current+2):
			pages = append(pages, i)
		case i == current-3 || i == current+3:
			pages = append(pages, Ellipsis)
		}
	}
	return pages
}
