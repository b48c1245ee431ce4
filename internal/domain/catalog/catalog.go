// Package catalog contains the product model and catalog validation rules.
package catalog

import (
	"fmt"
)

// TeamSize is the fixed number of products in a curated team, one per
// distinct category.
const TeamSize = 5

// Category classifies a product. The universe is a fixed closed set.
type Category string

// The fixed category universe.
const (
	Electronics Category = "Electronics"
	Audio       Category = "Audio"
	Furniture   Category = "Furniture"
	Wearables   Category = "Wearables"
	Displays    Category = "Displays"
	Accessories Category = "Accessories"
	Storage     Category = "Storage"
	Peripherals Category = "Peripherals"
)

// Categories lists the full category universe in canonical order.
func Categories() []Category {
	return []Category{
		Electronics, Audio, Furniture, Wearables,
		Displays, Accessories, Storage, Peripherals,
	}
}

// Valid reports whether c is one of the fixed category labels.
func (c Category) Valid() bool {
	switch c {
	case Electronics, Audio, Furniture, Wearables,
		Displays, Accessories, Storage, Peripherals:
		return true
	}
	return false
}

// Product is one catalog record. Value is derived (rating per unit price)
// and is zero until the value scorer has run.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Rating      float64  `json:"rating"`
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
	Value       float64  `json:"value"`
}

// Validate checks a single product against the catalog invariants:
// positive price and a category from the fixed universe.
func (p Product) Validate() error {
	if p.Price <= 0 {
		return fmt.Errorf("%w: product %d (%q) has non-positive price %d",
			ErrInvalidProduct, p.ID, p.Name, p.Price)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: product %d (%q) has category %q",
			ErrUnknownCategory, p.ID, p.Name, p.Category)
	}
	return nil
}

// ValidateAll checks every product and id uniqueness across the catalog.
func ValidateAll(products []Product) error {
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate product id %d", ErrInvalidProduct, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// DistinctCategories counts the distinct categories present in products.
func DistinctCategories(products []Product) int {
	seen := make(map[Category]struct{})
	for _, p := range products {
		seen[p.Category] = struct{}{}
	}
	return len(seen)
}
