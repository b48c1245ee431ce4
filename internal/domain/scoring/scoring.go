// Package scoring computes the budget-tiered composite score used to rank
// candidate combinations.
package scoring

import "math"

// Tier boundary constants. Boundaries are inclusive on the lower formula:
// a budget of exactly 500 scores with the low tier, exactly 1000 with the
// mid tier.
const (
	lowTierMax = 500
	midTierMax = 1000

	highTierCostDivisor = 100
)

// tier pairs an inclusive upper budget bound with its scoring formula.
// The table is ordered; the first tier whose bound covers the budget wins.
type tier struct {
	upperBound float64
	score      func(totalCost, totalValue, utilization float64) float64
}

// tiers is the scoring policy: low budgets favor pure value efficiency,
// higher budgets increasingly reward spending close to the full budget,
// and the top tier adds a bonus proportional to absolute spend.
var tiers = []tier{
	{
		upperBound: lowTierMax,
		score: func(_, totalValue, utilization float64) float64 {
			return totalValue + 0.5*utilization
		},
	},
	{
		upperBound: midTierMax,
		score: func(_, totalValue, utilization float64) float64 {
			return 0.7*totalValue + 2*utilization
		},
	},
	{
		upperBound: math.Inf(1),
		score: func(totalCost, totalValue, utilization float64) float64 {
			return 0.5*totalValue + 3*utilization + totalCost/highTierCostDivisor
		},
	},
}

// Score returns the composite score for a candidate combination. Higher is
// better; the number only has meaning relative to other candidates scored
// against the same budget.
func Score(totalCost, totalValue, budget float64) float64 {
	utilization := 0.0
	if budget > 0 {
		utilization = totalCost / budget
	}
	for _, t := range tiers {
		if budget <= t.upperBound {
			return t.score(totalCost, totalValue, utilization)
		}
	}
	// Unreachable: the last tier's bound is +Inf.
	return 0
}
