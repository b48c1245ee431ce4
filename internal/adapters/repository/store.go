// Package repository provides catalog sources for the selection engine.
package repository

import (
	"context"

	"github.com/okian/quintet/internal/domain/catalog"
)

// Store supplies validated catalog products. Implementations must return a
// fresh copy on every call so the engine can attach derived fields without
// touching shared state.
type Store interface {
	Products(ctx context.Context) ([]catalog.Product, error)
}
