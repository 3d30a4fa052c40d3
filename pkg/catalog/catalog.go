// Package catalog holds the product model and the showcase snapshot the
// storefront renders from.
package catalog

import (
	"context"
	"errors"
	"sync"

	"storefront/pkg/eventbus"
)

// TopicChanged is published after the showcase snapshot is replaced.
const TopicChanged eventbus.Topic = "catalog.changed"

// ErrNotFound indicates the requested product does not exist. Callers must
// treat it as recoverable: a stale id can legitimately arrive from a view
// that was already closed.
var ErrNotFound = errors.New("product not found")

// Category classifies a product.
type Category string

const (
	CategorySoftSkill  Category = "soft-skill"
	CategoryHardSkill  Category = "hard-skill"
	CategoryOther      Category = "other"
	CategoryButton     Category = "button"
	CategoryAdditional Category = "additional"
)

// Item is a catalog product. A nil Price means the item is not for sale.
// Items are immutable once fetched; the basket references them by value.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Price       *int64   `json:"price"`
}

// Repository defines server-side access to the product list.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
}

// Showcase holds the last fetched product list. The snapshot is replaced
// wholesale on each fetch; there are no partial updates.
type Showcase struct {
	mu    sync.RWMutex
	items []Item
	bus   *eventbus.Bus
}

// NewShowcase returns an empty showcase publishing on the given bus.
func NewShowcase(bus *eventbus.Bus) *Showcase {
	return &Showcase{bus: bus}
}

// SetItems replaces the snapshot and publishes TopicChanged.
func (s *Showcase) SetItems(items []Item) {
	s.mu.Lock()
	s.items = append([]Item(nil), items...)
	s.mu.Unlock()

	s.bus.Publish(TopicChanged, nil)
}

// Items returns a copy of the current snapshot.
func (s *Showcase) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Item(nil), s.items...)
}

// Item looks a product up by id.
func (s *Showcase) Item(id string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

// ItemPrice returns the price of the product with the given id. The result
// is nil for not-for-sale items.
func (s *Showcase) ItemPrice(id string) (*int64, error) {
	item, err := s.Item(id)
	if err != nil {
		return nil, err
	}
	return item.Price, nil
}
