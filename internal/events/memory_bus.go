package events

import (
	"context"
	"sync"
)

const defaultSubscriberBuffer = 64

// MemoryBus is an in-process Publisher with fan-out to channel subscribers.
// Events are dropped for a subscriber whose buffer is full, so a stalled
// consumer never blocks bet placement.
type MemoryBus struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[int]chan Event)}
}

// Publish delivers e to every current subscriber. It never blocks.
func (b *MemoryBus) Publish(_ context.Context, e Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
	return nil
}

// Subscribe registers a buffered channel for future events. The returned
// cancel function removes the subscription and closes the channel.
func (b *MemoryBus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, defaultSubscriberBuffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Close removes all subscribers and closes their channels.
func (b *MemoryBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
