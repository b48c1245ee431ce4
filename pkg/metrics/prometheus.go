// Package metrics provides Prometheus metrics for the quintet team-builder
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	// Business metrics
	teamRequests          prometheus.Counter
	teamsBuilt            prometheus.Counter
	emptyTeams            prometheus.Counter
	combinationsEvaluated prometheus.Counter
	searchLatency         prometheus.Histogram
	teamCost              prometheus.Histogram

	// Catalog metrics
	catalogProducts   prometheus.Gauge
	catalogCategories prometheus.Gauge
	budgetFloor       prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

var defaultManager *Manager

//nolint:gochecknoinits // package-level helpers need a default manager
func init() {
	defaultManager = NewManager()
}

// NewManager builds a Manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "quintet",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initCollectors()
	return m
}

func (m *Manager) initCollectors() {
	factory := promauto.With(m.registry)

	m.teamRequests = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "team_requests_total",
		Help:      "Total team-builder requests received.",
	})
	m.teamsBuilt = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "teams_built_total",
		Help:      "Total successfully curated teams.",
	})
	m.emptyTeams = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "empty_teams_total",
		Help:      "Requests for which no feasible team existed.",
	})
	m.combinationsEvaluated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "combinations_evaluated_total",
		Help:      "Candidate product combinations scored by the search.",
	})
	m.searchLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "search_latency_ms",
		Help:      "Combination search latency in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})
	m.teamCost = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "team_cost",
		Help:      "Total cost of curated teams.",
		Buckets:   prometheus.ExponentialBuckets(50, 2, 8),
	})

	m.catalogProducts = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "catalog_products",
		Help:      "Number of products in the active catalog.",
	})
	m.catalogCategories = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "catalog_categories",
		Help:      "Number of distinct categories in the active catalog.",
	})
	m.budgetFloor = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "budget_floor",
		Help:      "Minimum feasible budget for the active catalog.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"endpoint", "method", "status"})
	m.httpErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_errors_total",
		Help:      "HTTP error responses by endpoint and error type.",
	}, []string{"endpoint", "method", "type"})
}

// Registry exposes the manager's registry for serving via promhttp.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Package-level helpers operating on the default manager.

func RecordTeamRequest() { defaultManager.teamRequests.Inc() }

func RecordTeamBuilt(totalCost float64) {
	defaultManager.teamsBuilt.Inc()
	defaultManager.teamCost.Observe(totalCost)
}

func RecordEmptyTeam() { defaultManager.emptyTeams.Inc() }

func RecordCombinationsEvaluated(n int) {
	defaultManager.combinationsEvaluated.Add(float64(n))
}

func RecordSearchLatency(latencyMs float64) {
	defaultManager.searchLatency.Observe(latencyMs)
}

func UpdateCatalogProducts(count int) {
	defaultManager.catalogProducts.Set(float64(count))
}

func UpdateCatalogCategories(count int) {
	defaultManager.catalogCategories.Set(float64(count))
}

func UpdateBudgetFloor(floor float64) {
	defaultManager.budgetFloor.Set(floor)
}

func RecordHTTPRequest(endpoint, method, status string) {
	defaultManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	defaultManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

func RecordHTTPError(endpoint, method, errorType string) {
	defaultManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
}

// GetRegistry returns the default manager's registry.
func GetRegistry() *prometheus.Registry {
	return defaultManager.Registry()
}
