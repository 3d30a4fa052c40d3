// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"sync"

	"storefront/pkg/orders"
)

// Repository provides an in-memory implementation of orders.Repository.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]orders.Order
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{orders: make(map[string]orders.Order)}
}

// Create stores the order.
func (r *Repository) Create(ctx context.Context, o orders.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return nil
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id string) (orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return orders.Order{}, orders.ErrNotFound
	}
	return o, nil
}

// List returns all orders.
func (r *Repository) List(ctx context.Context) ([]orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]orders.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}
