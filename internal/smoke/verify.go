package smoke

import "fmt"

const teamSize = 5

// verifyTeam checks the engine invariants on one successful team response:
// exactly five products, pairwise distinct categories, and a total cost
// that both matches the product prices and fits the budget.
func verifyTeam(budget float64, team teamResult) error {
	if len(team.Products) != teamSize {
		return fmt.Errorf("budget %.2f: expected %d products, got %d",
			budget, teamSize, len(team.Products))
	}

	categories := make(map[string]struct{}, teamSize)
	sum := 0
	for _, p := range team.Products {
		if _, dup := categories[p.Category]; dup {
			return fmt.Errorf("budget %.2f: duplicate category %q", budget, p.Category)
		}
		categories[p.Category] = struct{}{}
		sum += p.Price
	}

	if sum != team.TotalCost {
		return fmt.Errorf("budget %.2f: total_cost %d does not match summed prices %d",
			budget, team.TotalCost, sum)
	}
	if float64(team.TotalCost) > budget {
		return fmt.Errorf("budget %.2f: total cost %d exceeds budget",
			budget, team.TotalCost)
	}
	return nil
}
