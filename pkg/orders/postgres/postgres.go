// Package postgres implements a PostgreSQL order repository.
package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"storefront/pkg/orders"
)

// Repository persists orders in PostgreSQL. The caller must ensure the
// database has an orders table:
// CREATE TABLE IF NOT EXISTS orders (id TEXT PRIMARY KEY, payment TEXT,
// email TEXT, phone TEXT, address TEXT, total BIGINT, items TEXT[]);
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new order.
func (r *Repository) Create(ctx context.Context, o orders.Order) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO orders (id, payment, email, phone, address, total, items) VALUES ($1,$2,$3,$4,$5,$6,$7)",
		o.ID, o.Payment, o.Email, o.Phone, o.Address, o.Total, pq.Array(o.Items))
	return err
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id string) (orders.Order, error) {
	var o orders.Order
	err := r.db.QueryRowContext(ctx,
		"SELECT id, payment, email, phone, address, total, items FROM orders WHERE id=$1", id).
		Scan(&o.ID, &o.Payment, &o.Email, &o.Phone, &o.Address, &o.Total, pq.Array(&o.Items))
	if err == sql.ErrNoRows {
		return orders.Order{}, orders.ErrNotFound
	}
	return o, err
}

// List fetches all orders.
func (r *Repository) List(ctx context.Context) ([]orders.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, payment, email, phone, address, total, items FROM orders")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []orders.Order
	for rows.Next() {
		var o orders.Order
		if err := rows.Scan(&o.ID, &o.Payment, &o.Email, &o.Phone, &o.Address, &o.Total, pq.Array(&o.Items)); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
