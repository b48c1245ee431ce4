// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/quintet/internal/domain/catalog"
)

// FloorDependencies defines the interface for budget-floor queries.
type FloorDependencies interface {
	MinimumBudget(ctx context.Context) (int, error)
}

// FloorHandler handles minimum-budget requests.
type FloorHandler struct {
	deps FloorDependencies
}

// NewFloorHandler creates a new floor handler.
func NewFloorHandler(deps FloorDependencies) *FloorHandler {
	return &FloorHandler{deps: deps}
}

// HandleMinimumBudget handles GET /minimum-budget requests.
func (h *FloorHandler) HandleMinimumBudget(w http.ResponseWriter, r *http.Request) {
	const op = "api.minimum_budget"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	floor, err := h.deps.MinimumBudget(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrInsufficientCategories) {
			writeError(w, http.StatusUnprocessableEntity, "insufficient_categories",
				Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, floorResponse{MinimumBudget: floor})
}
