package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// AttemptRepositoryImpl implements domain.AttemptRepository using Redis.
// A SetNX mark closes the race between a manual submit and an
// auto-submit arriving as two concurrent requests: only the request
// that sets the mark proceeds to persist.
type AttemptRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewAttemptRepository creates a new attempt repository. A zero ttl
// keeps marks forever; the DB unique index remains the durable backstop.
func NewAttemptRepository(client *redis.Client, ttl time.Duration) domain.AttemptRepository {
	return &AttemptRepositoryImpl{
		client: client,
		prefix: "submitted:",
		ttl:    ttl,
	}
}

func (r *AttemptRepositoryImpl) key(testID, userID uint) string {
	return fmt.Sprintf("%s%d:%d", r.prefix, testID, userID)
}

// Begin implements domain.AttemptRepository
func (r *AttemptRepositoryImpl) Begin(ctx context.Context, testID, userID uint) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.key(testID, userID), 1, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark attempt: %w", err)
	}
	return ok, nil
}

// Clear implements domain.AttemptRepository
func (r *AttemptRepositoryImpl) Clear(ctx context.Context, testID, userID uint) error {
	return r.client.Del(ctx, r.key(testID, userID)).Err()
}
