// Package orders defines the submitted-order record the backend persists.
package orders

import (
	"context"
	"errors"
)

// Order is an accepted storefront order.
type Order struct {
	ID      string   `json:"id"`
	Payment string   `json:"payment"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Total   int64    `json:"total"`
	Items   []string `json:"items"`
}

// Repository defines behavior for persisting orders.
type Repository interface {
	Create(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
}

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")
