package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const loginAttemptsKeyPrefix = "login_attempts:"

// LoginLimiter throttles login attempts per email using a Redis counter
// with a rolling window. Redis failures fail open: a broken cache must not
// lock everyone out.
type LoginLimiter struct {
	client   *redis.Client
	attempts int
	window   time.Duration
	logger   *zap.Logger
}

// NewLoginLimiter builds a limiter. A nil client disables throttling.
func NewLoginLimiter(client *redis.Client, attempts int, window time.Duration, logger *zap.Logger) *LoginLimiter {
	if attempts <= 0 {
		attempts = 10
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &LoginLimiter{client: client, attempts: attempts, window: window, logger: logger}
}

// Allow reports whether another login attempt for the email is permitted.
func (l *LoginLimiter) Allow(ctx context.Context, email string) bool {
	if l == nil || l.client == nil {
		return true
	}

	key := loginAttemptsKeyPrefix + email
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("login limiter unavailable; allowing attempt", zap.Error(err))
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			l.logger.Warn("login limiter expire failed", zap.Error(err))
		}
	}
	return count <= int64(l.attempts)
}
