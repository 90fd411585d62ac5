package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cabinet/internal/delivery/api/response"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/access"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	mockservice "cabinet/internal/mocks/service"
	mockusecase "cabinet/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{name: "valid", header: "Bearer abc.def", want: "abc.def", wantOK: true},
		{name: "case insensitive scheme", header: "bearer abc", want: "abc", wantOK: true},
		{name: "missing", header: ""},
		{name: "basic scheme", header: "Basic dXNlcg=="},
		{name: "empty token", header: "Bearer   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			got, ok := BearerToken(req)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthMiddleware_Identify(t *testing.T) {
	userID := uuid.New()

	identityOf := func(c echo.Context) (uuid.UUID, bool) {
		return deliverycontext.GetUserID(c)
	}

	t.Run("missing header passes through anonymously", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		mw := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: discardLogger()})

		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), rec)

		called := false
		err := mw.Identify(func(c echo.Context) error {
			called = true
			_, ok := identityOf(c)
			assert.False(t, ok)

			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("invalid token passes through anonymously", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateAccessToken("expired").
			Return(nil, errors.Join(domainerrors.ErrAuthenticationRequired, errors.New("token is expired")))
		mw := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: discardLogger()})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		called := false
		err := mw.Identify(func(c echo.Context) error {
			called = true
			_, ok := identityOf(c)
			assert.False(t, ok)

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("valid token stores identity", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{
			UserID: userID,
			Role:   entity.StructuredRoleClaim("", "staff"),
			Type:   service.TokenTypeAccess,
		}, nil)
		mw := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: discardLogger()})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		var gotID uuid.UUID
		var gotRole entity.RoleClaim
		err := mw.Identify(func(c echo.Context) error {
			gotID, _ = identityOf(c)
			gotRole = deliverycontext.GetRoleClaim(c)

			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotID)
		assert.True(t, gotRole.Is(entity.RoleStaff))
	})
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/admin/users", DashboardPath("/api/v1/admin/users"))
	assert.Equal(t, "/admin/users", DashboardPath("/api/v1/items/../admin/users"))
	assert.Equal(t, "/", DashboardPath("/api/v1"))
	assert.Equal(t, "/health", DashboardPath("/health"))
}

func TestRouteGuard_Guard(t *testing.T) {
	tests := []struct {
		name          string
		policy        access.Policy
		path          string
		authenticated bool
		role          entity.RoleClaim
		wantStatus    int
		wantCode      string
		wantRedirect  string
	}{
		{
			name:          "staff on admin route is forbidden",
			policy:        access.DefaultPolicy(),
			path:          "/api/v1/admin/users",
			authenticated: true,
			role:          entity.PlainRoleClaim("staff"),
			wantStatus:    http.StatusForbidden,
			wantCode:      "FORBIDDEN",
			wantRedirect:  "/403",
		},
		{
			name:          "structured staff name on admin route is forbidden",
			policy:        access.DefaultPolicy(),
			path:          "/api/v1/admin/reports/stock",
			authenticated: true,
			role:          entity.StructuredRoleClaim("ward-nurse", "staff"),
			wantStatus:    http.StatusForbidden,
			wantCode:      "FORBIDDEN",
			wantRedirect:  "/403",
		},
		{
			name:          "admin on admin route passes",
			policy:        access.DefaultPolicy(),
			path:          "/api/v1/admin/users",
			authenticated: true,
			role:          entity.RoleClaimFor(entity.RoleAdmin),
			wantStatus:    http.StatusOK,
		},
		{
			name:          "staff outside admin area passes",
			policy:        access.DefaultPolicy(),
			path:          "/api/v1/items",
			authenticated: true,
			role:          entity.PlainRoleClaim("staff"),
			wantStatus:    http.StatusOK,
		},
		{
			name:         "no session is sent to login",
			policy:       access.DefaultPolicy(),
			path:         "/api/v1/items",
			wantStatus:   http.StatusUnauthorized,
			wantCode:     "AUTHENTICATION_REQUIRED",
			wantRedirect: "/login",
		},
		{
			name:          "absent role is allowed by default",
			policy:        access.DefaultPolicy(),
			path:          "/api/v1/admin/users",
			authenticated: true,
			wantStatus:    http.StatusOK,
		},
		{
			name: "absent role waits when deferring",
			policy: func() access.Policy {
				p := access.DefaultPolicy()
				p.RoleAbsent = access.RoleAbsentDefer

				return p
			}(),
			path:          "/api/v1/admin/users",
			authenticated: true,
			wantStatus:    http.StatusUnauthorized,
			wantCode:      "ROLE_UNRESOLVED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guardUC := mockusecase.NewMockGuardUsecase(t)
			guardUC.EXPECT().Policy().Return(tt.policy)
			guard := NewRouteGuard(RouteGuardParams{GuardUC: guardUC, Logger: discardLogger()})

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), rec)
			if tt.authenticated {
				deliverycontext.SetIdentity(c, uuid.New(), tt.role)
			}

			require.NoError(t, guard.Guard(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRedirect, rec.Header().Get(response.HeaderGuardRedirect))
			if tt.wantCode != "" {
				info := decodeError(t, rec)
				assert.Equal(t, tt.wantCode, info.Code)
				assert.Nil(t, info.Details)
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "app error keeps its code",
			err:        errors.Wrap(domainerrors.ErrItemNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
			wantCode:   "ITEM_NOT_FOUND",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewErrorMiddleware(discardLogger())

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.NotContains(t, info.Message, "pq:")
		})
	}
}
