package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdempotencyIndex implements usecase.IdempotencyIndex using Redis.
// A key present in the index means the operation committed at least once;
// absence means nothing, the operation log decides.
type IdempotencyIndex struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewIdempotencyIndex creates a new IdempotencyIndex. Markers expire
// after ttl; the operation log keeps keys forever.
func NewIdempotencyIndex(client *redis.Client, ttl time.Duration) *IdempotencyIndex {
	return &IdempotencyIndex{
		client: client,
		prefix: "idem:",
		ttl:    ttl,
	}
}

// Seen reports whether the key has been marked applied.
func (s *IdempotencyIndex) Seen(ctx context.Context, key string) (bool, error) {
	_, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Mark records the key as applied.
func (s *IdempotencyIndex) Mark(ctx context.Context, key string) error {
	return s.client.SetNX(ctx, s.prefix+key, "applied", s.ttl).Err()
}
