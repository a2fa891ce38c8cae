package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_FanOut(t *testing.T) {
	bus := NewMemoryBus()
	defer bus.Close()

	ch1, cancel1 := bus.Subscribe()
	ch2, cancel2 := bus.Subscribe()
	defer cancel1()
	defer cancel2()

	marketID := uuid.New()
	e := New(TypeBetPlaced, marketID, map[string]any{"amount": uint64(5_000_000)})
	require.NoError(t, bus.Publish(context.Background(), e))

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, TypeBetPlaced, got.Type)
			assert.Equal(t, marketID, got.MarketID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestMemoryBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	bus := NewMemoryBus()
	defer bus.Close()

	// Never drained; its buffer fills and further events are dropped.
	_, cancel := bus.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < defaultSubscriberBuffer*2; i++ {
			_ = bus.Publish(context.Background(), New(TypeBetPlaced, uuid.New(), nil))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestMemoryBus_CancelClosesChannel(t *testing.T) {
	bus := NewMemoryBus()
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	cancel()
	cancel() // second cancel is a no-op

	_, open := <-ch
	assert.False(t, open)
}

func TestMemoryBus_PublishAfterClose(t *testing.T) {
	bus := NewMemoryBus()
	bus.Close()
	assert.NoError(t, bus.Publish(context.Background(), New(TypeMarketOpened, uuid.New(), nil)))
}

func TestRedisPublisher(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	sub := client.Subscribe(context.Background(), DefaultChannel)
	defer sub.Close()
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)

	p := NewRedisPublisher(client, "")
	marketID := uuid.New()
	require.NoError(t, p.Publish(context.Background(), New(TypeMarketResolved, marketID, map[string]any{"winner": 1})))

	msg, err := sub.ReceiveMessage(context.Background())
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, TypeMarketResolved, got.Type)
	assert.Equal(t, marketID, got.MarketID)
}

type failingPublisher struct{ err error }

func (f failingPublisher) Publish(context.Context, Event) error { return f.err }

type countingPublisher struct{ n int }

func (c *countingPublisher) Publish(context.Context, Event) error {
	c.n++
	return nil
}

func TestMulti_AttemptsAllAndReturnsFirstError(t *testing.T) {
	errBoom := errors.New("boom")
	counter := &countingPublisher{}
	m := Multi{failingPublisher{err: errBoom}, counter}

	err := m.Publish(context.Background(), New(TypePauseToggled, uuid.New(), nil))
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, counter.n)
}
