// Package search enumerates category subsets and product combinations to
// find the best-scoring team within a budget.
//
// The search is exhaustive over C(n, 5) category subsets times the cartesian
// product of each category's ranked top-K list, worst case O(C(n,5)·K^5).
// With the fixed 8-category universe and K=10 that is 5.6M evaluations,
// tractable for a small catalog but not a scalable algorithm for large n
// or K.
package search

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/okian/quintet/internal/domain/catalog"
	"github.com/okian/quintet/internal/domain/ranking"
	"github.com/okian/quintet/internal/domain/scoring"
)

// Result is the outcome of one search. An empty Team means no feasible
// combination existed for the budget; it is not an error.
type Result struct {
	Team      []catalog.Product
	TotalCost int
	Score     float64
	// Evaluated counts enumerated candidate combinations, for metrics.
	Evaluated int
}

// Found reports whether the search produced a feasible team.
func (r Result) Found() bool {
	return len(r.Team) == catalog.TeamSize
}

// Option applies a configuration option to the Searcher.
type Option func(*Searcher)

// WithWorkers sets the number of goroutines scanning category subsets.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.workers = n
		}
	}
}

// Searcher runs the exhaustive combination search.
type Searcher struct {
	workers int
}

// New creates a Searcher. By default the subset scan is spread over one
// worker per CPU.
func New(opts ...Option) *Searcher {
	s := &Searcher{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// subsetResult is the best candidate found within a single category subset.
type subsetResult struct {
	found     bool
	team      []catalog.Product
	totalCost int
	score     float64
	evaluated int
}

// Best returns the highest-scoring feasible team across all category
// subsets. Candidates tie-break by first-seen: within a subset the scan
// keeps the earliest candidate at a given score (strict > comparison), and
// subsets are reduced in enumeration order, so the result is identical to
// a fully sequential scan. Fewer than five categories yields an empty
// Result immediately.
func (s *Searcher) Best(ctx context.Context, idx ranking.Index, budget float64) Result {
	cats := idx.Categories()
	if len(cats) < catalog.TeamSize {
		return Result{}
	}

	subsets := combinations(len(cats), catalog.TeamSize)
	results := make([]subsetResult, len(subsets))

	workers := s.workers
	if workers > len(subsets) {
		workers = len(subsets)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				groups := make([][]catalog.Product, catalog.TeamSize)
				for j, ci := range subsets[i] {
					groups[j] = idx[cats[ci]]
				}
				results[i] = bestForSubset(groups, budget)
			}
		}()
	}

feed:
	for i := range subsets {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	// Reduce in subset enumeration order to preserve the first-seen rule
	// across subsets.
	best := Result{Score: math.Inf(-1)}
	for _, r := range results {
		best.Evaluated += r.evaluated
		if r.found && r.score > best.Score {
			best.Team = r.team
			best.TotalCost = r.totalCost
			best.Score = r.score
		}
	}
	if !best.Found() {
		return Result{Evaluated: best.Evaluated}
	}
	return best
}

// bestForSubset scans the full cartesian product of the subset's ranked
// lists sequentially, keeping the first candidate at the best score.
func bestForSubset(groups [][]catalog.Product, budget float64) subsetResult {
	for _, g := range groups {
		if len(g) == 0 {
			return subsetResult{}
		}
	}

	res := subsetResult{score: math.Inf(-1)}
	pick := make([]int, len(groups))
	idxs := make([]int, len(groups))
	for {
		res.evaluated++

		totalCost := 0
		for i, g := range groups {
			totalCost += g[idxs[i]].Price
		}
		if float64(totalCost) <= budget {
			totalValue := 0.0
			for i, g := range groups {
				totalValue += g[idxs[i]].Value
			}
			score := scoring.Score(float64(totalCost), totalValue, budget)
			if score > res.score {
				copy(pick, idxs)
				res.found = true
				res.totalCost = totalCost
				res.score = score
			}
		}

		// Advance the odometer, rightmost position fastest.
		i := len(idxs) - 1
		for i >= 0 {
			idxs[i]++
			if idxs[i] < len(groups[i]) {
				break
			}
			idxs[i] = 0
			i--
		}
		if i < 0 {
			break
		}
	}

	if res.found {
		res.team = make([]catalog.Product, len(groups))
		for i, g := range groups {
			res.team[i] = g[pick[i]]
		}
	}
	return res
}

// combinations returns all k-element index subsets of [0, n) in
// lexicographic order.
func combinations(n, k int) [][]int {
	var out [][]int
	cur := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		// Not enough elements left to fill the subset.
		for i := start; i <= n-(k-len(cur)); i++ {
			cur = append(cur, i)
			rec(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return out
}
