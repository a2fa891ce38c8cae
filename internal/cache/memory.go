package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt int64 // Unix nanoseconds, zero means never
}

// MemoryStore is an in-process Store. Expired entries are reaped lazily on
// access, so no background goroutine is needed.
type MemoryStore[V any] struct {
	mu    sync.RWMutex
	items map[string]entry[V]
}

func NewMemoryStore[V any]() *MemoryStore[V] {
	return &MemoryStore[V]{items: make(map[string]entry[V])}
}

func (m *MemoryStore[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	now := time.Now().UnixNano()

	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return zero, ErrMiss
	}
	if e.expiresAt > 0 && now > e.expiresAt {
		m.mu.Lock()
		// Recheck under the write lock; another writer may have replaced it.
		if cur, still := m.items[key]; still && cur.expiresAt == e.expiresAt {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return zero, ErrMiss
	}
	return e.value, nil
}

func (m *MemoryStore[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}
	m.mu.Lock()
	m.items[key] = entry[V]{value: value, expiresAt: exp}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, including any not yet reaped.
func (m *MemoryStore[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
