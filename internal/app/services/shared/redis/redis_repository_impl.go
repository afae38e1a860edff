package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *goredis.Client
}

func NewRedisRepository(client *goredis.Client) RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(incr.Val()), nil
}
