package config

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
)

func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	logger.Info().Str("addr", addr).Msg("Connected to Redis")
	return rdb, nil
}
