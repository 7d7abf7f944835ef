package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the go-redis client backing the submission
// attempt guard.
type RedisClient struct{ *redis.Client }

// NewRedis creates a redis client
func NewRedis(addr, pass string, db int) *RedisClient {
	return &RedisClient{redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

// Healthy pings the server, so startup fails fast on a bad address
// instead of surfacing on the first submission.
func (r *RedisClient) Healthy(ctx context.Context) error {
	if err := r.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
