package impl

import (
	"context"
	"io"
	"log/slog"

	"cabinet/config"
	"cabinet/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Guard: &config.GuardConfig{},
		Stock: &config.StockConfig{DefaultParLevel: 5},
	}
	cfg.Env.Timezone = "Asia/Taipei"

	return cfg
}

// executeWith runs the transaction body against factory, the way the real
// manager does after opening a transaction.
func executeWith(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}
