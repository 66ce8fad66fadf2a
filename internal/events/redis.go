package events

import (
	"context"
	"encoding/json"
	"github.com/go-redis/redis/v8"
)

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher fans events out on a pub/sub channel.
type RedisPublisher struct {
	rdb     redisPublisher
	channel string
}

func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.rdb.Publish(ctx, p.channel, payload).Err()
}
