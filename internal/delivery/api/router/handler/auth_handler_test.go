package handler

import (
	"net/http"
	"testing"

	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/errors"
	mockusecase "cabinet/internal/mocks/usecase"
	"cabinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestEcho(t *testing.T) (*echo.Echo, *mockusecase.MockUserUsecase) {
	t.Helper()

	userUC := mockusecase.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/auth/login", h.Login)
	e.POST("/auth/refresh", h.RefreshToken)
	e.POST("/auth/logout", h.Logout)

	return e, userUC
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success returns tokens and structured role", func(t *testing.T) {
		e, userUC := newAuthTestEcho(t)
		user := &entity.User{ID: uuid.New(), Email: "nurse@ward.example", Name: "Nurse", Role: entity.RoleStaff}

		userUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "nurse@ward.example", Password: "Secret#123"}).
			Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)

		rec := doRequest(e, http.MethodPost, "/auth/login", map[string]string{
			"email":    "nurse@ward.example",
			"password": "Secret#123",
		})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		data := decodeData[LoginResponse](t, rec)
		assert.Equal(t, "access", data.AccessToken)
		assert.Equal(t, "refresh", data.RefreshToken)
		require.NotNil(t, data.User)
		assert.Equal(t, user.ID, data.User.ID)
		assert.True(t, data.User.Role.IsStructured())
		assert.True(t, data.User.Role.Is(entity.RoleStaff))
		assert.Contains(t, rec.Body.String(), `"role":{"code":"staff","name":"Staff"}`)
	})

	t.Run("invalid credentials are a 401, never a 403", func(t *testing.T) {
		e, userUC := newAuthTestEcho(t)
		userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

		rec := doRequest(e, http.MethodPost, "/auth/login", map[string]string{
			"email":    "nurse@ward.example",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "INVALID_CREDENTIALS", info.Code)
		assert.Nil(t, info.Details)
	})

	t.Run("lockout carries retry details", func(t *testing.T) {
		e, userUC := newAuthTestEcho(t)
		userUC.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrTooManyAttempts.WithDetails("retry in 5m0s"))

		rec := doRequest(e, http.MethodPost, "/auth/login", map[string]string{
			"email":    "nurse@ward.example",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "TOO_MANY_ATTEMPTS", info.Code)
		assert.Equal(t, "retry in 5m0s", info.Details)
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		e, _ := newAuthTestEcho(t)

		rec := doRequest(e, http.MethodPost, "/auth/login", map[string]string{
			"email":    "not-an-email",
			"password": "x",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", info.Code)
		assert.Equal(t, map[string]any{"email": "email"}, info.Details)
	})

	t.Run("infrastructure failure is hidden", func(t *testing.T) {
		e, userUC := newAuthTestEcho(t)
		userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

		rec := doRequest(e, http.MethodPost, "/auth/login", map[string]string{
			"email":    "nurse@ward.example",
			"password": "Secret#123",
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "dial tcp")
	})
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	e, userUC := newAuthTestEcho(t)

	userUC.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "r1"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "a2"}, nil)
	userUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "r1"}).Return(nil)

	rec := doRequest(e, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"access_token": "a2"}, decodeData[map[string]string](t, rec))

	rec = doRequest(e, http.MethodPost, "/auth/logout", map[string]string{"refresh_token": "r1"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPost, "/auth/logout", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Code)
}
