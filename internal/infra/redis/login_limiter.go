package redis

import (
	"context"
	"strings"
	"time"

	"cabinet/config"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
	defaultLockout     = 15 * time.Minute

	failureKeyPrefix = "login:fail:"
	lockKeyPrefix    = "login:lock:"
)

// loginLimiter counts failures in a fixed window per key and locks the key
// once the count reaches maxAttempts.
type loginLimiter struct {
	client      *goredis.Client
	maxAttempts int64
	window      time.Duration
	lockout     time.Duration
}

// LimiterParams holds dependencies for the login limiter
type LimiterParams struct {
	fx.In

	Config *config.Config
	Client *goredis.Client
}

// NewLoginLimiter returns the Redis limiter, or a no-op one when limiting is disabled.
func NewLoginLimiter(params LimiterParams) service.LoginLimiter {
	cfg := params.Config.LoginLimit
	if cfg == nil || !cfg.Enabled || params.Client == nil {
		return noopLimiter{}
	}

	return newLoginLimiter(params.Client, cfg.MaxAttempts, cfg.Window, cfg.Lockout)
}

func newLoginLimiter(client *goredis.Client, maxAttempts int, window, lockout time.Duration) *loginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	if lockout <= 0 {
		lockout = defaultLockout
	}

	return &loginLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
		lockout:     lockout,
	}
}

func (l *loginLimiter) Locked(ctx context.Context, key string) (bool, time.Duration, error) {
	ttl, err := l.client.PTTL(ctx, lockKeyPrefix+normalizeKey(key)).Result()
	if err != nil {
		return false, 0, errors.Wrap(err, "failed to read login lock")
	}
	if ttl <= 0 {
		return false, 0, nil
	}

	return true, ttl, nil
}

func (l *loginLimiter) RegisterFailure(ctx context.Context, key string) (bool, error) {
	key = normalizeKey(key)
	failureKey := failureKeyPrefix + key

	count, err := l.client.Incr(ctx, failureKey).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to count login failure")
	}
	if count == 1 {
		if err := l.client.Expire(ctx, failureKey, l.window).Err(); err != nil {
			return false, errors.Wrap(err, "failed to set failure window")
		}
	}
	if count < l.maxAttempts {
		return false, nil
	}

	pipe := l.client.TxPipeline()
	pipe.Set(ctx, lockKeyPrefix+key, count, l.lockout)
	pipe.Del(ctx, failureKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, errors.Wrap(err, "failed to lock login")
	}

	return true, nil
}

func (l *loginLimiter) Reset(ctx context.Context, key string) error {
	key = normalizeKey(key)
	if err := l.client.Del(ctx, failureKeyPrefix+key, lockKeyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to reset login failures")
	}

	return nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

type noopLimiter struct{}

func (noopLimiter) Locked(context.Context, string) (bool, time.Duration, error) {
	return false, 0, nil
}

func (noopLimiter) RegisterFailure(context.Context, string) (bool, error) {
	return false, nil
}

func (noopLimiter) Reset(context.Context, string) error {
	return nil
}
