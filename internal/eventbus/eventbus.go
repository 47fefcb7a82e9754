package eventbus

import (
	"sync"

	model "gigboard/internal/models"
)

// HireOccurred is published after a hire transition has been committed to
// the store. FreelancerID identifies the winning bidder to notify.
type HireOccurred struct {
	Gig          model.Gig
	FreelancerID string
}

// Bus is an in-process publish/subscribe channel for hire events. Publish
// is fire-and-forget: delivery is asynchronous and never blocks the
// publisher. Subscriptions last for the life of the process.
type Bus interface {
	Publish(event HireOccurred)
	Subscribe(handler func(HireOccurred))
}

// MemoryBus is a concurrency-safe single-process Bus implementation
type MemoryBus struct {
	mu       sync.RWMutex
	handlers []func(HireOccurred)
}

// NewMemoryBus creates an empty in-process bus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{}
}

// Subscribe registers a handler for all future events
func (b *MemoryBus) Subscribe(handler func(HireOccurred)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish dispatches the event to every subscriber on its own goroutine,
// so a slow subscriber never holds up the publisher
func (b *MemoryBus) Publish(event HireOccurred) {
	b.mu.RLock()
	handlers := make([]func(HireOccurred), len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		go handler(event)
	}
}
