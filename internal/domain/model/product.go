// Package model defines the core domain entities for the point-of-sale service.
package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidProduct is returned when a product has an empty name, a negative price
	// or an unknown category.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrDuplicateProduct is returned when two catalog products share a name.
	ErrDuplicateProduct = errors.New("duplicate product name")
)

// Category classifies a product. It is descriptive only.
type Category string

const (
	// CategoryFood marks food items.
	CategoryFood Category = "food"
	// CategoryDrink marks drink items.
	CategoryDrink Category = "drink"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryFood || c == CategoryDrink
}

// Product is an immutable purchasable item. Name is the identity used for merging cart lines.
//
// @Description Catalog product
// @Example {"name": "Burger", "price": "5.99", "category": "food"}
type Product struct {
	Name     string          `json:"name" example:"Burger"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"5.99"`
	Category Category        `json:"category" example:"food"`
}

// NewProduct builds a product from a float price, mostly for fixtures.
func NewProduct(name string, price float64, category Category) Product {
	return Product{Name: name, Price: decimal.NewFromFloat(price), Category: category}
}

// Validate checks the product fields.
func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProduct)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: %s has negative price", ErrInvalidProduct, p.Name)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: %s has unknown category %q", ErrInvalidProduct, p.Name, p.Category)
	}
	return nil
}

// Catalog is a read-only, ordered collection of products unique by name.
type Catalog struct {
	products []Product
	byName   map[string]int
}

// NewCatalog validates the products and returns a catalog preserving their order.
func NewCatalog(products ...Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byName:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byName[p.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.Name)
		}
		c.byName[p.Name] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Products returns a copy of the catalog in its original order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find looks a product up by name.
func (c *Catalog) Find(name string) (Product, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
