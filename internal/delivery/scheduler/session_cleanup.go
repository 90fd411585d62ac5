// Package scheduler runs periodic maintenance jobs inside the API process.
package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"cabinet/config"
	"cabinet/internal/delivery"
	"cabinet/internal/usecase"

	"go.uber.org/fx"
)

// SessionCleanupParams holds dependencies for the session cleanup job, injected by Fx.
type SessionCleanupParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	UserUC usecase.UserUsecase
}

type sessionCleanup struct {
	interval time.Duration
	userUC   usecase.UserUsecase
	logger   *slog.Logger
	started  atomic.Bool
	stop     chan struct{}
	done     chan struct{}
}

// NewSessionCleanup periodically purges expired refresh tokens.
func NewSessionCleanup(params SessionCleanupParams) delivery.Delivery {
	interval := time.Hour
	if params.Config.Auth != nil && params.Config.Auth.SessionCleanupInterval > 0 {
		interval = params.Config.Auth.SessionCleanupInterval
	}

	job := &sessionCleanup{
		interval: interval,
		userUC:   params.UserUC,
		logger:   params.Logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: job.shutdown,
	})

	return job
}

// Serve blocks until the job is stopped or ctx is cancelled.
func (j *sessionCleanup) Serve(ctx context.Context) error {
	j.started.Store(true)
	defer close(j.done)

	j.logger.Info("Starting session cleanup", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.stop:
			return nil
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *sessionCleanup) runOnce(ctx context.Context) {
	removed, err := j.userUC.CleanupExpiredSessions(ctx)
	if err != nil {
		j.logger.Error("Session cleanup failed", slog.Any("error", err))

		return
	}
	if removed > 0 {
		j.logger.Info("Expired sessions removed", slog.Int64("count", removed))
	}
}

func (j *sessionCleanup) shutdown(ctx context.Context) error {
	close(j.stop)
	if !j.started.Load() {
		return nil
	}

	select {
	case <-j.done:
	case <-ctx.Done():
	}

	return nil
}
