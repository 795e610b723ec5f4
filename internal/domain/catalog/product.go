package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

// Product is read-only reference data after catalog load.
type Product struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Price         decimal.Decimal     `json:"price"`
	OriginalPrice decimal.Decimal     `json:"original_price,omitempty"`
	Image         string              `json:"image,omitempty"`
	Category      string              `json:"category"`
	Tags          []string            `json:"tags,omitempty"`
	Description   string              `json:"description,omitempty"`
	InStock       bool                `json:"in_stock"`
	Stock         int                 `json:"stock"`
	Rating        float64             `json:"rating"`
	Reviews       int                 `json:"reviews"`
	Options       map[string][]string `json:"options,omitempty"`
}

// OnSale reports whether the product has a pre-discount price above the
// current one.
func (p Product) OnSale() bool {
	return !p.OriginalPrice.IsZero() && p.OriginalPrice.GreaterThan(p.Price)
}

// Catalog holds the immutable product reference set.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

func New(products []Product) *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// ByID returns the product with the given id.
func (c *Catalog) ByID(id string) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// Len returns the number of products in the reference set.
func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns a copy of the full product list.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}
