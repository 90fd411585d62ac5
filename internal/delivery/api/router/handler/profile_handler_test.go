package handler

import (
	"net/http"
	"testing"

	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	mockusecase "cabinet/internal/mocks/usecase"
	"cabinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler(t *testing.T) {
	userID := uuid.New()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	me := e.Group("/me", withIdentity(userID, entity.RoleStaff))
	me.GET("", h.GetProfile)
	me.PUT("/password", h.ChangePassword)

	t.Run("get profile", func(t *testing.T) {
		userUC.EXPECT().GetProfile(mock.Anything, userID).
			Return(&entity.User{ID: userID, Email: "a@b.example", Name: "A", Role: entity.RoleStaff, Ward: "5B"}, nil).Once()

		rec := doRequest(e, http.MethodGet, "/me", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData[UserResponse](t, rec)
		assert.Equal(t, "5B", data.Ward)
		assert.True(t, data.Role.Is(entity.RoleStaff))
	})

	t.Run("change password with wrong current password", func(t *testing.T) {
		userUC.EXPECT().ChangePassword(mock.Anything, &usecase.ChangePasswordInput{
			UserID:          userID,
			CurrentPassword: "old",
			NewPassword:     "N3w#Password",
		}).Return(domainerrors.ErrInvalidCredentials).Once()

		rec := doRequest(e, http.MethodPut, "/me/password", map[string]string{
			"current_password": "old",
			"new_password":     "N3w#Password",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
	})

	t.Run("new password must differ", func(t *testing.T) {
		rec := doRequest(e, http.MethodPut, "/me/password", map[string]string{
			"current_password": "same",
			"new_password":     "same",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"new_password": "nefield=CurrentPassword"}, decodeError(t, rec).Details)
	})
}

func TestProfileHandler_WithoutIdentity(t *testing.T) {
	h := NewProfileHandler(ProfileHandlerParams{UserUC: mockusecase.NewMockUserUsecase(t), Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/me", h.GetProfile)

	rec := doRequest(e, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
