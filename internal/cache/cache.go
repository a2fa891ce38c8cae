// Package cache provides a small typed cache used for read-heavy lookups
// such as market listings and odds snapshots.
package cache

import (
	"context"
	"errors"
	"time"
)

const (
	MemoryBackend = "memory"
	RedisBackend  = "redis"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache: key not found")

// Store is a typed key/value cache.
type Store[V any] interface {
	// Get returns the cached value or ErrMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key. Zero ttl means no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// New builds a Store for the named backend. Redis options are required for
// the redis backend and ignored otherwise.
func New[V any](backend string, opts *RedisOptions) (Store[V], error) {
	switch backend {
	case MemoryBackend:
		return NewMemoryStore[V](), nil
	case RedisBackend:
		if opts == nil {
			return nil, errors.New("cache: redis backend requires options")
		}
		return NewRedisStore[V](opts), nil
	default:
		return nil, errors.New("cache: unknown backend " + backend)
	}
}
