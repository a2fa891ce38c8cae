package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type odds struct {
	Pools []uint64 `json:"pools"`
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[odds]()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	want := odds{Pools: []uint64{33, 66}}
	require.NoError(t, s.Set(ctx, "m1", want, 0))

	got, err := s.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, s.Delete(ctx, "m1"))
	_, err = s.Get(ctx, "m1")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[string]()

	require.NoError(t, s.Set(ctx, "k", "v", 10*time.Millisecond))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	time.Sleep(20 * time.Millisecond)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
	assert.Zero(t, s.Len(), "expired entry should be reaped on access")
}

func TestMemoryStore_DeleteAbsentKey(t *testing.T) {
	s := NewMemoryStore[int]()
	assert.NoError(t, s.Delete(context.Background(), "nope"))
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s := NewRedisStore[odds](&RedisOptions{Addr: mr.Addr()})
	defer s.Close()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	want := odds{Pools: []uint64{50, 25, 25}}
	require.NoError(t, s.Set(ctx, "m2", want, time.Minute))

	got, err := s.Get(ctx, "m2")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, s.Delete(ctx, "m2"))
	_, err = s.Get(ctx, "m2")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisStore_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s := NewRedisStore[string](&RedisOptions{Addr: mr.Addr()})
	defer s.Close()

	require.NoError(t, s.Set(ctx, "k", "v", time.Second))

	mr.FastForward(2 * time.Second)
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestNew_Backends(t *testing.T) {
	s, err := New[int](MemoryBackend, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore[int]{}, s)

	_, err = New[int](RedisBackend, nil)
	assert.Error(t, err)

	_, err = New[int]("disk", nil)
	assert.Error(t, err)
}
