package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cabinet/config"
	"cabinet/internal/delivery/api/middleware"
	"cabinet/internal/delivery/api/response"
	"cabinet/internal/delivery/api/router"
	"cabinet/internal/delivery/api/router/handler"
	"cabinet/internal/domain/access"
	mockservice "cabinet/internal/mocks/service"
	mockusecase "cabinet/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestAPIServer(t *testing.T) *apiServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowOrigins = []string{"https://dashboard.example"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userUC := mockusecase.NewMockUserUsecase(t)
	guardUC := mockusecase.NewMockGuardUsecase(t)
	guardUC.EXPECT().Policy().Return(access.DefaultPolicy()).Maybe()

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: userUC, Logger: logger}),
			ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{UserUC: userUC, Logger: logger}),
			AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: mockusecase.NewMockAccountUsecase(t), Logger: logger}),
			ItemHandler:    handler.NewItemHandler(handler.ItemHandlerParams{ItemUC: mockusecase.NewMockItemUsecase(t), Logger: logger}),
			StockHandler:   handler.NewStockHandler(handler.StockHandlerParams{StockUC: mockusecase.NewMockStockUsecase(t), Logger: logger}),
			GuardHandler:   handler.NewGuardHandler(handler.GuardHandlerParams{GuardUC: guardUC, Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: mockservice.NewMockTokenService(t), Logger: logger}),
			RouteGuard:     middleware.NewRouteGuard(middleware.RouteGuardParams{GuardUC: guardUC, Logger: logger}),
			GuardUC:        guardUC,
		},
	})
	require.NoError(t, err)

	api, ok := srv.(*apiServer)
	require.True(t, ok)

	return api
}

func TestAPIServer_SecurityHeaders(t *testing.T) {
	api := newTestAPIServer(t)

	rec := httptest.NewRecorder()
	api.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'none'")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPIServer_TrailingSlashReachesGuard(t *testing.T) {
	api := newTestAPIServer(t)

	rec := httptest.NewRecorder()
	api.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(response.HeaderGuardRedirect))
}
