package redis

import (
	"context"
	"time"
)

type RedisRepository interface {
	// IncrementWithTTL atomically increments key and, when the key is new,
	// sets its expiry. Returns the post-increment counter value.
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
}
