package smoke

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Stats aggregates one smoke run.
type Stats struct {
	Requests int64
	Teams    int64
	Empty    int64
	Failures int64
	Elapsed  time.Duration
}

// Run sweeps budgets from the service's floor up to MaxBudget and verifies
// every successful team response. It returns an error when any invariant
// check or request fails.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	runID := uuid.New().String()[:8]
	log.Printf("🚀 smoke run %s against %s", runID, cfg.BaseURL)

	c := &client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}

	floor, err := c.fetchFloor(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch floor: %w", err)
	}
	log.Printf("💰 budget floor: $%d", floor)

	budgets := sweep(float64(floor), cfg.MaxBudget, cfg.Steps)

	stats := &Stats{}
	start := time.Now()

	jobs := make(chan float64)
	errs := make(chan error, len(budgets))
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for budget := range jobs {
				atomic.AddInt64(&stats.Requests, 1)
				status, team, err := c.fetchTeam(ctx, budget)
				if err != nil {
					atomic.AddInt64(&stats.Failures, 1)
					errs <- err
					continue
				}
				if status != http.StatusOK {
					atomic.AddInt64(&stats.Failures, 1)
					errs <- fmt.Errorf("budget %.2f: status %d", budget, status)
					continue
				}
				if len(team.Products) == 0 {
					atomic.AddInt64(&stats.Empty, 1)
					continue
				}
				if err := verifyTeam(budget, team); err != nil {
					atomic.AddInt64(&stats.Failures, 1)
					errs <- err
					continue
				}
				atomic.AddInt64(&stats.Teams, 1)
				if cfg.Verbose {
					log.Printf("✅ budget %.2f → cost %d", budget, team.TotalCost)
				}
			}
		}()
	}

feed:
	for _, b := range budgets {
		select {
		case jobs <- b:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(errs)
	stats.Elapsed = time.Since(start)

	var firstErr error
	for err := range errs {
		if firstErr == nil {
			firstErr = err
		}
		log.Printf("⚠️  %v", err)
	}

	log.Printf("📊 run %s: %d requests, %d teams, %d empty, %d failures in %s",
		runID, stats.Requests, stats.Teams, stats.Empty, stats.Failures, stats.Elapsed)
	if firstErr != nil {
		return stats, fmt.Errorf("smoke run failed: %w", firstErr)
	}
	log.Printf("✅ all invariants held")
	return stats, nil
}

// sweep produces evenly spaced budgets from lo to hi inclusive, always
// starting exactly at the floor so the tightest case is covered.
func sweep(lo, hi float64, steps int) []float64 {
	if steps < 2 || hi <= lo {
		return []float64{lo}
	}
	out := make([]float64, steps)
	step := (hi - lo) / float64(steps-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
