package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the redis pub/sub channel events are published on.
const DefaultChannel = "tote.events"

// RedisPublisher pushes events to a redis pub/sub channel so consumers
// outside this process can follow market activity.
type RedisPublisher struct {
	client    *redis.Client
	channel   string
	opTimeout time.Duration
}

// NewRedisPublisher wraps an existing client. An empty channel selects
// DefaultChannel.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{
		client:    client,
		channel:   channel,
		opTimeout: 200 * time.Millisecond,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, p.opTimeout)
	defer cancel()
	return p.client.Publish(ctx, p.channel, data).Err()
}
