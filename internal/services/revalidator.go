package services

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Revalidator tells views derived from the store (feeds, follower counts) that they are stale.
// It is best effort: a failed signal never fails the operation that sent it.
type Revalidator interface {
	Revalidate(ctx context.Context, path string)
}

type NopRevalidator struct{}

func (NopRevalidator) Revalidate(context.Context, string) {}

// RedisRevalidator publishes the stale path on a Redis pub/sub channel
type RedisRevalidator struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

func NewRedisRevalidator(client *redis.Client, channel string, logger *zap.Logger) *RedisRevalidator {
	return &RedisRevalidator{client: client, channel: channel, logger: logger}
}

func (r *RedisRevalidator) Revalidate(ctx context.Context, path string) {
	if err := r.client.Publish(ctx, r.channel, path).Err(); err != nil {
		r.logger.Warn("revalidate publish failed", zap.String("path", path), zap.Error(err))
	}
}
