package middleware

import (
	"log/slog"
	"strings"

	"cabinet/internal/delivery/api/response"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/access"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is stripped before the route guard matches dashboard routes.
const APIPrefix = "/api/v1"

// RouteGuardParams holds dependencies for RouteGuard, injected by Fx.
type RouteGuardParams struct {
	fx.In

	GuardUC usecase.GuardUsecase
	Logger  *slog.Logger
}

// RouteGuard applies the dashboard route guard to API requests.
type RouteGuard struct {
	guardUC usecase.GuardUsecase
	logger  *slog.Logger
}

// NewRouteGuard is the constructor for RouteGuard.
func NewRouteGuard(params RouteGuardParams) *RouteGuard {
	return &RouteGuard{
		guardUC: params.GuardUC,
		logger:  params.Logger,
	}
}

// Guard must run after Identify. A request without an identity is an
// unauthenticated session and is sent to the login route.
func (g *RouteGuard) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := access.SessionState{
			CurrentPath: DashboardPath(c.Request().URL.Path),
		}
		if _, ok := deliverycontext.GetUserID(c); ok {
			state.IsAuthenticated = true
			state.Role = deliverycontext.GetRoleClaim(c)
		}

		outcome := g.guardUC.Policy().Evaluate(state)
		if outcome.Render() {
			return next(c)
		}

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), g.logger)
		logger.Info("Route guard blocked request",
			slog.String("path", state.CurrentPath),
			slog.String("decision", outcome.Decision.String()),
			slog.String("role", state.Role.ResolveCode()),
		)

		if outcome.Target != "" {
			c.Response().Header().Set(response.HeaderGuardRedirect, outcome.Target)
		}

		switch outcome.Decision {
		case access.DecisionUnauthenticated:
			return authenticationRequired(c)
		case access.DecisionForbidden:
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
		default:
			return response.Unauthorized(c, domainerrors.ErrRoleUnresolved.ErrorCode(), domainerrors.ErrRoleUnresolved.Message())
		}
	}
}

// DashboardPath maps an API request path onto the dashboard route space.
func DashboardPath(requestPath string) string {
	return access.NormalizePath(strings.TrimPrefix(access.NormalizePath(requestPath), APIPrefix))
}
