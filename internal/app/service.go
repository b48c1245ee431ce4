// Package service orchestrates the selection engine: catalog load, value
// scoring, category ranking and combination search.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/okian/quintet/internal/adapters/repository"
	"github.com/okian/quintet/internal/domain/catalog"
	"github.com/okian/quintet/internal/domain/floor"
	"github.com/okian/quintet/internal/domain/ranking"
	"github.com/okian/quintet/internal/domain/search"
	"github.com/okian/quintet/internal/domain/types"
	"github.com/okian/quintet/internal/domain/value"
	"github.com/okian/quintet/pkg/logger"
	"github.com/okian/quintet/pkg/metrics"
)

// Default configuration constants.
const (
	defaultTopCandidates = 10
)

// Service implements the API dependencies for the team-builder system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	searcher *search.Searcher

	// Configuration
	topCandidates int
	searchWorkers int
	catalogPath   string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTopCandidates sets the per-category candidate cap for the ranking
// index.
func WithTopCandidates(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.topCandidates = k
		}
	}
}

// WithSearchWorkers sets the parallelism of the combination search.
func WithSearchWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.searchWorkers = n
		}
	}
}

// WithCatalogPath loads the catalog from a file instead of the embedded
// sample data.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		s.catalogPath = path
	}
}

// WithStore injects a catalog store directly, bypassing catalog loading.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		topCandidates: defaultTopCandidates,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the catalog and prepares the search components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		var opts []repository.Option
		if s.catalogPath != "" {
			opts = append(opts, repository.WithPath(s.catalogPath))
		}
		store, err := repository.NewCatalogStore(ctx, opts...)
		if err != nil {
			return err
		}
		s.store = store
	}

	searchOpts := []search.Option{}
	if s.searchWorkers > 0 {
		searchOpts = append(searchOpts, search.WithWorkers(s.searchWorkers))
	}
	s.searcher = search.New(searchOpts...)

	s.publishCatalogMetrics(ctx)

	s.started = true
	s.logger.Info(ctx, "team-builder service started",
		logger.Int("topCandidates", s.topCandidates),
		logger.Int("searchWorkers", s.searchWorkers),
	)
	return nil
}

// Stop shuts the service down. The engine holds no background work; this
// only flips the started flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "team-builder service stopped")
}

// BuildTeam curates the best team for the budget. An empty team means the
// budget was infeasible or the catalog had fewer than five categories;
// both conditions deliberately collapse to an empty result here, unlike
// MinimumBudget which raises.
func (s *Service) BuildTeam(ctx context.Context, budget float64) (types.Team, error) {
	metrics.RecordTeamRequest()

	products, err := s.store.Products(ctx)
	if err != nil {
		return types.Team{}, err
	}
	scored, err := value.Compute(products)
	if err != nil {
		return types.Team{}, err
	}
	idx := ranking.Build(scored, ranking.WithTopCandidates(s.topCandidates))

	start := time.Now()
	result := s.searcher.Best(ctx, idx, budget)
	metrics.RecordSearchLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordCombinationsEvaluated(result.Evaluated)

	if !result.Found() {
		metrics.RecordEmptyTeam()
		s.logger.Debug(ctx, "no feasible team",
			logger.Float64("budget", budget),
			logger.Int("categories", len(idx)),
		)
		return types.Team{}, nil
	}

	metrics.RecordTeamBuilt(float64(result.TotalCost))
	s.logger.Debug(ctx, "team curated",
		logger.Float64("budget", budget),
		logger.Int("totalCost", result.TotalCost),
		logger.Float64("score", result.Score),
		logger.Int("evaluated", result.Evaluated),
	)
	return types.Team{Products: result.Team, TotalCost: result.TotalCost}, nil
}

// MinimumBudget returns the budget floor for the catalog. Fails with
// catalog.ErrInsufficientCategories when fewer than five categories exist.
func (s *Service) MinimumBudget(ctx context.Context) (int, error) {
	products, err := s.store.Products(ctx)
	if err != nil {
		return 0, err
	}
	return floor.Minimum(products)
}

// Products returns the catalog with derived values attached.
func (s *Service) Products(ctx context.Context) ([]catalog.Product, error) {
	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	return value.Compute(products)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":       s.started,
		"topCandidates": s.topCandidates,
		"searchWorkers": s.searchWorkers,
	}
	if s.started {
		if products, err := s.store.Products(context.Background()); err == nil {
			stats["products"] = len(products)
			stats["categories"] = catalog.DistinctCategories(products)
		}
	}
	return stats
}

// publishCatalogMetrics records catalog gauges once at startup; the
// catalog is immutable for the life of the process.
func (s *Service) publishCatalogMetrics(ctx context.Context) {
	products, err := s.store.Products(ctx)
	if err != nil {
		return
	}
	metrics.UpdateCatalogProducts(len(products))
	metrics.UpdateCatalogCategories(catalog.DistinctCategories(products))
	if f, err := floor.Minimum(products); err == nil {
		metrics.UpdateBudgetFloor(float64(f))
	}
}
