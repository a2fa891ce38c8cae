package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures the redis-backed Store.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	PoolSize  int
	OpTimeout time.Duration // per-call timeout, defaulted if zero
}

// RedisStore keeps values as JSON under their keys so instances behind a
// load balancer share one view.
type RedisStore[V any] struct {
	client    *redis.Client
	opTimeout time.Duration
}

func NewRedisStore[V any](opts *RedisOptions) *RedisStore[V] {
	if opts.OpTimeout == 0 {
		opts.OpTimeout = 100 * time.Millisecond
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	})
	return &RedisStore[V]{client: client, opTimeout: opts.OpTimeout}
}

// Close releases the underlying connections.
func (r *RedisStore[V]) Close() error {
	return r.client.Close()
}

func (r *RedisStore[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, ErrMiss
	}
	if err != nil {
		return zero, err
	}
	var val V
	if err := json.Unmarshal(data, &val); err != nil {
		return zero, err
	}
	return val, nil
}

func (r *RedisStore[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *RedisStore[V]) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Del(ctx, key).Err()
}
