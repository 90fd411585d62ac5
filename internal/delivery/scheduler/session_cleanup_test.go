package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"cabinet/config"
	"cabinet/internal/errors"
	mockusecase "cabinet/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestSessionCleanup_RunsUntilStopped(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	userUC := mockusecase.NewMockUserUsecase(t)

	var runs atomic.Int32
	userUC.EXPECT().CleanupExpiredSessions(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			if runs.Add(1) == 1 {
				return 0, errors.New("database unavailable")
			}

			return 2, nil
		})

	job := NewSessionCleanup(SessionCleanupParams{
		Lc:     lc,
		Config: &config.Config{Auth: &config.AuthConfig{SessionCleanupInterval: 5 * time.Millisecond}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		UserUC: userUC,
	})

	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- job.Serve(context.Background()) }()

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)

	lc.RequireStop()
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("session cleanup did not stop")
	}
}
