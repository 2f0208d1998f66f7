package eventbus

import (
	"log/slog"
	"sync"

	"github.com/mcoot/fastlane/internal/model"
)

// Handler receives a published payload. Payload may be nil.
type Handler func(event model.EventType, payload any)

// Subscription identifies one registration so it can be removed later
type Subscription struct {
	id    uint64
	event model.EventType
	all   bool
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous publish/subscribe dispatcher. Handlers for an event are
// called in subscription order on the publishing goroutine, followed by
// handlers subscribed to every event.
type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[model.EventType][]registration
	wildcard []registration
	logger   *slog.Logger
}

// New creates an empty bus
func New(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[model.EventType][]registration),
		logger:   logger.With(slog.String("component", "eventbus")),
	}
}

// Subscribe registers a handler for one event. Subscribing the same handler
// twice yields two independent registrations.
func (b *Bus) Subscribe(event model.EventType, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.handlers[event] = append(b.handlers[event], registration{id: b.nextID, handler: h})
	return Subscription{id: b.nextID, event: event}
}

// SubscribeAll registers a handler for every event
func (b *Bus) SubscribeAll(h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.wildcard = append(b.wildcard, registration{id: b.nextID, handler: h})
	return Subscription{id: b.nextID, all: true}
}

// Unsubscribe removes exactly the given registration. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub.all {
		b.wildcard = without(b.wildcard, sub.id)
		return
	}
	regs := without(b.handlers[sub.event], sub.id)
	if len(regs) == 0 {
		delete(b.handlers, sub.event)
		return
	}
	b.handlers[sub.event] = regs
}

// Publish calls every current subscriber of the event synchronously.
// Handlers may subscribe or unsubscribe during dispatch; changes apply to
// the next publish.
func (b *Bus) Publish(event model.EventType, payload any) {
	b.mu.Lock()
	regs := make([]registration, 0, len(b.handlers[event])+len(b.wildcard))
	regs = append(regs, b.handlers[event]...)
	regs = append(regs, b.wildcard...)
	b.mu.Unlock()

	b.logger.Debug("publish", slog.String("event", string(event)), slog.Int("subscribers", len(regs)))
	for _, r := range regs {
		r.handler(event, payload)
	}
}

// SubscriberCount returns the number of registrations for an event, not counting wildcards
func (b *Bus) SubscriberCount(event model.EventType) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[event])
}

func without(regs []registration, id uint64) []registration {
	for i, r := range regs {
		if r.id == id {
			out := make([]registration, 0, len(regs)-1)
			out = append(out, regs[:i]...)
			return append(out, regs[i+1:]...)
		}
	}
	return regs
}
