// Package smoke sweeps budgets against a running team-builder service and
// verifies the engine invariants end to end.
package smoke

import "time"

// Config controls one smoke run.
type Config struct {
	// BaseURL of the service under test.
	BaseURL string
	// Steps is the number of budgets swept between the floor and MaxBudget.
	Steps int
	// MaxBudget is the top of the sweep range.
	MaxBudget float64
	// Workers is the number of concurrent request workers.
	Workers int
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// Verbose enables per-budget result logging.
	Verbose bool
}
