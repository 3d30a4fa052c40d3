// Package eventbus implements the synchronous publish/subscribe broker
// that connects the storefront stores to the view layer. Dispatch happens
// on the publishing goroutine: exact-topic handlers run first, then
// wildcard handlers, each group in registration order.
package eventbus

import (
	"sync"

	"go.uber.org/zap"
)

// Topic names a published event. Domain packages declare their topics as
// typed constants so the coordinator's reaction table stays a closed set.
type Topic string

// Wildcard subscribes a handler to every published topic.
const Wildcard Topic = "*"

// Event is what wildcard handlers receive as their payload.
type Event struct {
	Topic   Topic
	Payload any
}

// Handler reacts to a published event. Exact-topic handlers receive the
// published payload; wildcard handlers receive an Event value.
type Handler func(payload any)

// Subscription is the capability to undo a Subscribe call.
type Subscription struct {
	bus   *Bus
	topic Topic
	id    uint64
}

// Unsubscribe removes the registration. Calling it twice is a no-op.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.bus != nil {
		s.bus.Unsubscribe(s)
	}
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus fans events out. It is safe for concurrent use; handlers may publish
// further events from inside a handler (the registry lock is not held
// during dispatch).
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Topic][]registration
	log    *zap.Logger
}

// New returns an empty bus. The logger reports handlers that panic.
func New(log *zap.Logger) *Bus {
	return &Bus{
		subs: make(map[Topic][]registration),
		log:  log,
	}
}

// Subscribe registers the handler for an exact topic, or for every topic
// when called with Wildcard. Handlers registered for the same topic fire in
// registration order.
func (b *Bus) Subscribe(topic Topic, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[topic] = append(b.subs[topic], registration{id: b.nextID, handler: h})
	return &Subscription{bus: b, topic: topic, id: b.nextID}
}

// Unsubscribe removes exactly the given registration. It is a no-op when
// the subscription was already removed.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.subs[sub.topic]
	for i, reg := range regs {
		if reg.id == sub.id {
			b.subs[sub.topic] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish invokes every handler registered for the topic, then every
// wildcard handler, synchronously on the calling goroutine. A panicking
// handler is recovered and logged so the remaining handlers still run.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.Lock()
	exact := append([]registration(nil), b.subs[topic]...)
	wild := append([]registration(nil), b.subs[Wildcard]...)
	b.mu.Unlock()

	for _, reg := range exact {
		b.dispatch(topic, reg, payload)
	}
	for _, reg := range wild {
		b.dispatch(topic, reg, Event{Topic: topic, Payload: payload})
	}
}

func (b *Bus) dispatch(topic Topic, reg registration, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked",
				zap.String("topic", string(topic)),
				zap.Any("panic", r))
		}
	}()
	reg.handler(payload)
}

// Trigger returns a zero-argument function that publishes a fixed topic
// and payload, for binding to UI callbacks without an inline closure.
func (b *Bus) Trigger(topic Topic, payload any) func() {
	return func() {
		b.Publish(topic, payload)
	}
}
