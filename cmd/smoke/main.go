package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/quintet/internal/smoke"
)

// Default configuration constants.
const (
	defaultSteps     = 200
	defaultMaxBudget = 2500.0
	defaultTimeout   = 10 * time.Second
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8000", "Base URL of the service")
		steps     = flag.Int("steps", defaultSteps, "Number of budgets to sweep")
		maxBudget = flag.Float64("max-budget", defaultMaxBudget, "Top of the budget sweep range")
		workers   = flag.Int("workers", runtime.NumCPU(), "Number of concurrent workers")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose   = flag.Bool("v", false, "Log every budget result")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := &smoke.Config{
		BaseURL:   *baseURL,
		Steps:     *steps,
		MaxBudget: *maxBudget,
		Workers:   *workers,
		Timeout:   *timeout,
		Verbose:   *verbose,
	}
	if _, err := smoke.Run(ctx, cfg); err != nil {
		os.Exit(1)
	}
}
