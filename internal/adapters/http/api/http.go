// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/quintet/internal/domain/catalog"
	"github.com/okian/quintet/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// BuildTeam curates the best team for a budget. An empty team is a
	// valid outcome, not an error.
	BuildTeam(ctx context.Context, budget float64) (types.Team, error)

	// MinimumBudget returns the budget floor for the catalog.
	MinimumBudget(ctx context.Context) (int, error)

	// Products returns the catalog with derived values attached.
	Products(ctx context.Context) ([]catalog.Product, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	rootHandler     *RootHandler
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	teamHandler     *TeamHandler
	floorHandler    *FloorHandler
	productsHandler *ProductsHandler

	allowedOrigins []string
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, allowedOrigins []string) *Server {
	return &Server{
		rootHandler:     NewRootHandler(),
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		teamHandler:     NewTeamHandler(deps),
		floorHandler:    NewFloorHandler(deps),
		productsHandler: NewProductsHandler(deps),
		allowedOrigins:  allowedOrigins,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.wrap(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", s.wrap(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/team-builder", s.wrap(s.teamHandler.HandleBuildTeam, "team_builder"))
	mux.HandleFunc("/minimum-budget", s.wrap(s.floorHandler.HandleMinimumBudget, "minimum_budget"))
	mux.HandleFunc("/products", s.wrap(s.productsHandler.HandleListProducts, "products"))
	mux.HandleFunc("/", s.wrap(s.rootHandler.HandleRoot, "root"))
}

// wrap applies the standard middleware chain to a handler.
func (s *Server) wrap(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(CORSMiddleware(MetricsMiddleware(next, endpoint), s.allowedOrigins))
}

// teamResponse mirrors the response shape of GET /team-builder.
type teamResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Budget    float64           `json:"budget"`
	TotalCost int               `json:"total_cost"`
	Products  []catalog.Product `json:"products"`
}

type floorResponse struct {
	MinimumBudget int `json:"minimum_budget"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// Wrap tags an error with the failing operation.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// NewKind tags a sentinel error kind with the failing operation.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind tags a sentinel kind and an underlying cause with the failing
// operation.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
