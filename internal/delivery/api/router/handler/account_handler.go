package handler

import (
	"log/slog"
	"net/http"

	"cabinet/internal/delivery/api/response"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/entity"
	"cabinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves administrator account management.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// CreateAccountRequest represents the request body for provisioning an account
type CreateAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
	Ward     string `json:"ward" validate:"max=64"`
}

// ListAccountsQuery filters the account listing
type ListAccountsQuery struct {
	PageQuery
	Role string `query:"role" validate:"omitempty,oneof=admin staff"`
}

// ResetPasswordRequest represents the request body for an administrator password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required"`
}

// CreateAccount provisions a new admin or staff account
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.accountUC.CreateAccount(c.Request().Context(), &usecase.CreateAccountInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Ward:     req.Ward,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// ListAccounts pages through accounts
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	var query ListAccountsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	page, err := h.accountUC.ListAccounts(c.Request().Context(), &usecase.ListAccountsInput{
		Role:   entity.Role(query.Role),
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PageResponse[*UserResponse]{
		Items:  mapSlice(page.Users, newUserResponse),
		Total:  page.Total,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
}

// ResetPassword sets another user's password and signs them out everywhere
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	err = h.accountUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		UserID:      userID,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}

// DeleteAccount removes a user together with its credential and sessions
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	actorID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), actorID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
