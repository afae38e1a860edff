package ratelimiter

import (
	"context"
	"fmt"
	sharedredis "hospicare-service/internal/app/services/shared/redis"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AttemptLimiter is a fixed-window counter stored in redis with a TTL equal
// to the window duration. It caps how often a single resource (here: a
// payment order) may be acted on within the window.
type AttemptLimiter struct {
	redis             sharedredis.RedisRepository
	log               *zap.Logger
	group             string
	windowDurationSec int
	maxQuota          int
}

// Decision reports allowance and, when denied, seconds until the next window.
type Decision struct {
	Allowed        bool
	RetryAfterSecs int
}

// NewAttemptLimiter constructs a limiter namespaced by group. A maxQuota of
// zero (or less) disables limiting entirely.
func NewAttemptLimiter(redis sharedredis.RedisRepository, log *zap.Logger, group string, windowDurationSec, maxQuota int) *AttemptLimiter {
	if windowDurationSec <= 0 {
		windowDurationSec = 60
	}
	return &AttemptLimiter{
		redis:             redis,
		log:               log,
		group:             strings.ToUpper(strings.TrimSpace(group)),
		windowDurationSec: windowDurationSec,
		maxQuota:          maxQuota,
	}
}

func (l *AttemptLimiter) Allow(ctx context.Context, resource string) (*Decision, error) {
	if l.maxQuota <= 0 {
		return &Decision{Allowed: true}, nil
	}

	resource = strings.ToLower(strings.TrimSpace(resource))
	if resource == "" {
		return &Decision{Allowed: false, RetryAfterSecs: l.windowDurationSec}, nil
	}

	now := time.Now().UTC()
	windowID := now.Unix() / int64(l.windowDurationSec)
	key := fmt.Sprintf("%s:%s:%d", l.group, resource, windowID)

	ttl := time.Duration(l.windowDurationSec)*time.Second + time.Second
	newCount, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("AttemptLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err))
		return &Decision{Allowed: false}, err
	}

	nextWindowStart := (windowID + 1) * int64(l.windowDurationSec)
	retryAfter := int(nextWindowStart-now.Unix()) + 1

	if newCount > l.maxQuota {
		return &Decision{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}
	return &Decision{Allowed: true}, nil
}
