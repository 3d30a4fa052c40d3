// Package postgres implements a PostgreSQL product repository.
package postgres

import (
	"context"
	"database/sql"

	"storefront/pkg/catalog"
)

// Repository reads products from PostgreSQL. The caller must ensure the
// database has a products table:
// CREATE TABLE IF NOT EXISTS products (id TEXT PRIMARY KEY, title TEXT,
// description TEXT, image TEXT, category TEXT, price BIGINT);
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List fetches all products.
func (r *Repository) List(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, description, image, category, price FROM products")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Get retrieves a product by id.
func (r *Repository) Get(ctx context.Context, id string) (catalog.Item, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, title, description, image, category, price FROM products WHERE id=$1", id)
	item, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return catalog.Item{}, catalog.ErrNotFound
	}
	return item, err
}

func scanItem(scan func(dest ...any) error) (catalog.Item, error) {
	var (
		item  catalog.Item
		price sql.NullInt64
	)
	if err := scan(&item.ID, &item.Title, &item.Description, &item.Image, &item.Category, &price); err != nil {
		return catalog.Item{}, err
	}
	// NULL price marks a not-for-sale item.
	if price.Valid {
		item.Price = &price.Int64
	}
	return item, nil
}
