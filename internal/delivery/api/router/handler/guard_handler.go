package handler

import (
	"log/slog"
	"net/http"

	"cabinet/internal/delivery/api/middleware"
	"cabinet/internal/delivery/api/response"
	"cabinet/internal/domain/access"
	"cabinet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GuardHandlerParams holds dependencies for GuardHandler, injected by Fx.
type GuardHandlerParams struct {
	fx.In

	GuardUC usecase.GuardUsecase
	Logger  *slog.Logger
}

// GuardHandler lets the dashboard ask for the route guard outcome of a path.
type GuardHandler struct {
	guardUC usecase.GuardUsecase
	logger  *slog.Logger
}

// NewGuardHandler is the constructor for GuardHandler
func NewGuardHandler(params GuardHandlerParams) *GuardHandler {
	return &GuardHandler{
		guardUC: params.GuardUC,
		logger:  params.Logger,
	}
}

// GuardRequest names the dashboard route about to be rendered
type GuardRequest struct {
	Path string `json:"path" validate:"required,startswith=/"`
}

// GuardResponse is the guard outcome for the requested path
type GuardResponse struct {
	Path string `json:"path"`
	access.Outcome
	Render bool `json:"render"`
}

// Evaluate returns the guard outcome for the caller's session on a path.
// The session is read from the optional bearer token; without one the
// outcome is a redirect to the login route.
func (h *GuardHandler) Evaluate(c echo.Context) error {
	var req GuardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guard input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	token, _ := middleware.BearerToken(c.Request())
	path := access.NormalizePath(req.Path)

	outcome := h.guardUC.Evaluate(c.Request().Context(), &usecase.GuardInput{
		AccessToken: token,
		Path:        path,
	})

	return response.Success(c, http.StatusOK, &GuardResponse{
		Path:    path,
		Outcome: outcome,
		Render:  outcome.Render(),
	})
}
