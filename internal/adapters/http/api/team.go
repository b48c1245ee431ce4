// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/quintet/internal/domain/catalog"
	"github.com/okian/quintet/internal/domain/types"
)

// TeamDependencies defines the interface for team curation.
type TeamDependencies interface {
	BuildTeam(ctx context.Context, budget float64) (types.Team, error)
	MinimumBudget(ctx context.Context) (int, error)
}

// TeamHandler handles team-builder requests.
type TeamHandler struct {
	deps TeamDependencies
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(deps TeamDependencies) *TeamHandler {
	return &TeamHandler{deps: deps}
}

// HandleBuildTeam handles GET /team-builder?budget=N requests.
func (h *TeamHandler) HandleBuildTeam(w http.ResponseWriter, r *http.Request) {
	const op = "api.build_team"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	budgetStr := r.URL.Query().Get("budget")
	if budgetStr == "" {
		writeError(w, http.StatusBadRequest, "bad_request",
			WrapKind(op, ErrBadRequest, errors.New("missing budget")))
		return
	}
	budget, err := strconv.ParseFloat(budgetStr, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request",
			WrapKind(op, ErrBadRequest, errors.New("budget must be a number")))
		return
	}
	if budget < 0 {
		writeError(w, http.StatusBadRequest, "bad_request",
			WrapKind(op, ErrBadRequest, errors.New("budget must be non-negative")))
		return
	}

	// Budgets below the catalog floor get an actionable message. When the
	// catalog itself cannot produce a floor the curation below reports the
	// empty team instead.
	if floor, ferr := h.deps.MinimumBudget(r.Context()); ferr == nil && budget < float64(floor) {
		writeError(w, http.StatusBadRequest, "below_minimum",
			WrapKind(op, ErrBudgetBelowFloor, fmt.Errorf("budget must be at least $%d", floor)))
		return
	}

	team, err := h.deps.BuildTeam(r.Context(), budget)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	resp := teamResponse{
		Status:    "success",
		Budget:    budget,
		TotalCost: team.TotalCost,
		Products:  team.Products,
	}
	if team.Found() {
		resp.Message = fmt.Sprintf("team built successfully with budget: $%.2f", budget)
	} else {
		resp.Message = "no feasible team for this budget"
		resp.Products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, resp)
}
