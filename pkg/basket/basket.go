// Package basket holds the set of products the user intends to purchase.
package basket

import (
	"sync"

	"go.uber.org/zap"

	"storefront/pkg/catalog"
	"storefront/pkg/eventbus"
)

// TopicChanged is published after every mutation of the basket contents.
const TopicChanged eventbus.Topic = "basket.changed"

// Basket stores catalog items added to the cart. At most one entry exists
// per item id; a duplicate add is a logged no-op. Invalid input (empty id,
// absent entry) never mutates state and never publishes.
type Basket struct {
	mu    sync.Mutex
	items []catalog.Item
	bus   *eventbus.Bus
	log   *zap.Logger
}

// New returns an empty basket publishing on the given bus.
func New(bus *eventbus.Bus, log *zap.Logger) *Basket {
	return &Basket{bus: bus, log: log}
}

// Add appends the item and publishes TopicChanged. Items without an id and
// items already in the basket are rejected with a warning. An item with a
// nil price is accepted: the "can add" gate belongs to the preview, and the
// basket stays permissive.
func (b *Basket) Add(item catalog.Item) {
	b.mu.Lock()
	if item.ID == "" {
		b.mu.Unlock()
		b.log.Warn("attempt to add an invalid item to the basket")
		return
	}
	if b.containsLocked(item.ID) {
		b.mu.Unlock()
		b.log.Warn("item is already in the basket", zap.String("id", item.ID))
		return
	}
	b.items = append(b.items, item)
	b.mu.Unlock()

	b.bus.Publish(TopicChanged, nil)
}

// Remove deletes the entry with the given id and publishes TopicChanged.
// An empty or absent id is rejected with a warning.
func (b *Basket) Remove(id string) {
	b.mu.Lock()
	if id == "" {
		b.mu.Unlock()
		b.log.Warn("attempt to remove an item with an invalid id")
		return
	}
	if !b.containsLocked(id) {
		b.mu.Unlock()
		b.log.Warn("cannot remove what is not there", zap.String("id", id))
		return
	}
	kept := b.items[:0]
	for _, item := range b.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	b.items = kept
	b.mu.Unlock()

	b.bus.Publish(TopicChanged, nil)
}

// Contains reports whether an item with the given id is in the basket.
// It is false for an empty id.
func (b *Basket) Contains(id string) bool {
	if id == "" {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.containsLocked(id)
}

func (b *Basket) containsLocked(id string) bool {
	for _, item := range b.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the basket unconditionally and publishes TopicChanged
// exactly once.
func (b *Basket) Clear() {
	b.mu.Lock()
	b.items = nil
	b.mu.Unlock()

	b.bus.Publish(TopicChanged, nil)
}

// Total sums the prices of the current entries. Not-for-sale items
// contribute 0.
func (b *Basket) Total() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	var total int64
	for _, item := range b.items {
		if item.Price != nil {
			total += *item.Price
		}
	}
	return total
}

// Count returns the number of entries.
func (b *Basket) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Items returns a copy of the current entries in insertion order.
func (b *Basket) Items() []catalog.Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]catalog.Item(nil), b.items...)
}

// IDs returns the ids of the current entries, for the order payload.
func (b *Basket) IDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, 0, len(b.items))
	for _, item := range b.items {
		ids = append(ids, item.ID)
	}
	return ids
}
