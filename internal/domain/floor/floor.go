// Package floor computes the minimum budget for which a feasible team
// exists: the cheapest 5-category selection of per-category minimum prices.
package floor

import (
	"fmt"
	"sort"

	"github.com/okian/quintet/internal/domain/catalog"
)

// Minimum returns the budget floor for the catalog: group products by
// category, reduce each group to its cheapest price, then take the smallest
// sum over all 5-subsets of categories — which is simply the five smallest
// per-category minimums. Products need no value scoring here. Fewer than
// five distinct categories is a hard error, unlike the search's empty
// result for the same condition.
func Minimum(products []catalog.Product) (int, error) {
	cheapest := make(map[catalog.Category]int)
	for _, p := range products {
		if cur, ok := cheapest[p.Category]; !ok || p.Price < cur {
			cheapest[p.Category] = p.Price
		}
	}
	if len(cheapest) < catalog.TeamSize {
		return 0, fmt.Errorf("%w: need %d, have %d",
			catalog.ErrInsufficientCategories, catalog.TeamSize, len(cheapest))
	}

	minimums := make([]int, 0, len(cheapest))
	for _, price := range cheapest {
		minimums = append(minimums, price)
	}
	sort.Ints(minimums)

	total := 0
	for _, price := range minimums[:catalog.TeamSize] {
		total += price
	}
	return total, nil
}
