package service

import (
	"context"
	"time"
)

// LoginLimiter throttles repeated failed logins per account key.
type LoginLimiter interface {
	// Locked reports whether key is locked out and for how much longer.
	Locked(ctx context.Context, key string) (bool, time.Duration, error)

	// RegisterFailure counts a failure and reports whether it triggered a lockout.
	RegisterFailure(ctx context.Context, key string) (bool, error)

	// Reset clears failures after a successful login.
	Reset(ctx context.Context, key string) error
}
