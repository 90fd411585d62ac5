package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cabinet/config"
	"cabinet/internal/delivery/worker/handler"
	"cabinet/internal/domain/constants"
	mockusecase "cabinet/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestWorker(t *testing.T) *workerServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderLocal}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	push := handler.NewPushHandler(handler.PushHandlerParams{
		Config:       cfg,
		Logger:       logger,
		StockAlertUC: mockusecase.NewMockStockAlertUsecase(t),
	})

	srv, err := NewServer(ServerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: push,
	})
	require.NoError(t, err)

	worker, ok := srv.(*workerServer)
	require.True(t, ok)

	return worker
}

func TestWorkerServer_Health(t *testing.T) {
	worker := newTestWorker(t)

	rec := httptest.NewRecorder()
	worker.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "stockworker")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWorkerServer_RejectsOversizePush(t *testing.T) {
	worker := newTestWorker(t)

	body := `{"message":{"data":"` + strings.Repeat("A", 2048) + `"}}`
	req := httptest.NewRequest(http.MethodPost, pushPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	worker.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
