// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/quintet/internal/domain/catalog"
)

// ProductsDependencies defines the interface for catalog listing.
type ProductsDependencies interface {
	Products(ctx context.Context) ([]catalog.Product, error)
}

// ProductsHandler handles catalog listing requests.
type ProductsHandler struct {
	deps ProductsDependencies
}

// NewProductsHandler creates a new products handler.
func NewProductsHandler(deps ProductsDependencies) *ProductsHandler {
	return &ProductsHandler{deps: deps}
}

// HandleListProducts handles GET /products requests.
func (h *ProductsHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_products"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	products, err := h.deps.Products(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, products)
}
