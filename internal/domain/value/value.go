// Package value computes the per-product value metric: rating per unit price.
package value

import (
	"fmt"

	"github.com/okian/quintet/internal/domain/catalog"
)

// Compute returns a copy of products with Value set to rating/price for each
// entry. The input slice is never mutated; callers may share it across
// requests. A non-positive price is rejected rather than producing an
// infinite or NaN value.
func Compute(products []catalog.Product) ([]catalog.Product, error) {
	out := make([]catalog.Product, len(products))
	for i, p := range products {
		if p.Price <= 0 {
			return nil, fmt.Errorf("%w: product %d (%q) has non-positive price %d",
				catalog.ErrInvalidProduct, p.ID, p.Name, p.Price)
		}
		p.Value = p.Rating / float64(p.Price)
		out[i] = p
	}
	return out, nil
}
