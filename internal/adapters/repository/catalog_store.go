package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/okian/quintet/internal/domain/catalog"
)

//go:embed catalog.json
var embeddedCatalog []byte

// Option applies a configuration option to the CatalogStore.
type Option func(*CatalogStore)

// WithPath loads the catalog from a JSON file instead of the embedded
// sample data.
func WithPath(path string) Option {
	return func(s *CatalogStore) {
		s.path = path
	}
}

// CatalogStore is an in-memory catalog loaded once at construction. The
// products are immutable after load; Products hands out copies.
type CatalogStore struct {
	path     string
	products []catalog.Product
}

// NewCatalogStore loads and validates the catalog. Validation happens here,
// at the boundary, so the engine never sees a non-positive price or an
// unknown category.
func NewCatalogStore(ctx context.Context, opts ...Option) (*CatalogStore, error) {
	s := &CatalogStore{}
	for _, opt := range opts {
		opt(s)
	}

	raw := embeddedCatalog
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
		}
		raw = b
	}

	var products []catalog.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalog, err)
	}
	if err := catalog.ValidateAll(products); err != nil {
		return nil, err
	}

	s.products = products
	return s, nil
}

// Products returns a copy of the catalog.
func (s *CatalogStore) Products(_ context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Len returns the number of products in the catalog.
func (s *CatalogStore) Len() int {
	return len(s.products)
}
