// Package redis holds the Redis-backed adapters.
package redis

import (
	"context"
	"log/slog"

	"cabinet/config"
	"cabinet/internal/domain/lifecycle"
	"cabinet/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultAddr = "localhost:6379"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client. The connection is only verified on
// start when a Redis-backed feature is enabled.
func NewClient(params Params) *goredis.Client {
	opts := &goredis.Options{Addr: defaultAddr}
	if cfg := params.Config.Redis; cfg != nil {
		if cfg.Addr != "" {
			opts.Addr = cfg.Addr
		}
		opts.Password = cfg.Password
		opts.DB = cfg.DB
	}

	client := goredis.NewClient(opts)
	required := params.Config.LoginLimit != nil && params.Config.LoginLimit.Enabled

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if !required {
				return nil
			}

			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", opts.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client
}
