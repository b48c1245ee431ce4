// Package ranking groups value-scored products by category and ranks each
// group for the combination search.
package ranking

import (
	"sort"

	"github.com/okian/quintet/internal/domain/catalog"
)

// defaultTopCandidates caps each category's ranked list. The cap trades
// precision for a bounded search space: a product past the cap is never
// considered, even when it would win.
const defaultTopCandidates = 10

// Index maps each category present in the catalog to its products, sorted
// by descending value and truncated to the top-candidate cap. Iteration
// over the map is order-free; use Categories for a deterministic order.
type Index map[catalog.Category][]catalog.Product

// Option applies a configuration option to the index builder.
type Option func(*builder)

// WithTopCandidates sets the per-category ranked list cap.
func WithTopCandidates(k int) Option {
	return func(b *builder) {
		if k > 0 {
			b.topCandidates = k
		}
	}
}

type builder struct {
	topCandidates int
}

// Build groups products by category, sorts each group by descending value
// with ties broken by ascending id (a documented deterministic rule), and
// truncates each group to the configured cap.
func Build(products []catalog.Product, opts ...Option) Index {
	b := &builder{topCandidates: defaultTopCandidates}
	for _, opt := range opts {
		opt(b)
	}

	idx := make(Index)
	for _, p := range products {
		idx[p.Category] = append(idx[p.Category], p)
	}
	for cat, group := range idx {
		sort.Slice(group, func(i, j int) bool {
			if group[i].Value != group[j].Value {
				return group[i].Value > group[j].Value
			}
			return group[i].ID < group[j].ID
		})
		if len(group) > b.topCandidates {
			group = group[:b.topCandidates]
		}
		idx[cat] = group
	}
	return idx
}

// Categories returns the index's categories sorted by name. The sorted
// order keeps subset enumeration, and therefore tie-breaking, reproducible
// across runs.
func (idx Index) Categories() []catalog.Category {
	cats := make([]catalog.Category, 0, len(idx))
	for c := range idx {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
