// Package memory implements an in-memory product repository.
package memory

import (
	"context"
	"sync"

	"storefront/pkg/catalog"
)

// Repository provides an in-memory implementation of catalog.Repository,
// seeded with a fixed product list.
type Repository struct {
	mu    sync.RWMutex
	items []catalog.Item
}

// New creates a repository seeded with the given products.
func New(items []catalog.Item) *Repository {
	return &Repository{items: append([]catalog.Item(nil), items...)}
}

// List returns all products in seed order.
func (r *Repository) List(ctx context.Context) ([]catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.Item(nil), r.items...), nil
}

// Get retrieves a product by id.
func (r *Repository) Get(ctx context.Context, id string) (catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return catalog.Item{}, catalog.ErrNotFound
}
