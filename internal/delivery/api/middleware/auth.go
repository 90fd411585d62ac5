package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cabinet/internal/delivery/api/response"
	deliverycontext "cabinet/internal/delivery/context"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware validates access tokens and stores the caller's identity.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		logger:   params.Logger,
	}
}

// Identify stores the caller's identity when the request carries a valid
// bearer access token. Requests without one pass through anonymously; the
// route guard decides what an anonymous session may reach.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c.Request())
		if !ok {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected access token",
				slog.Any("error", err),
			)

			return next(c)
		}

		deliverycontext.SetIdentity(c, claims.UserID, claims.Role)

		return next(c)
	}
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header.
func BearerToken(req *http.Request) (string, bool) {
	header := req.Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

func authenticationRequired(c echo.Context) error {
	return response.Unauthorized(c,
		domainerrors.ErrAuthenticationRequired.ErrorCode(),
		domainerrors.ErrAuthenticationRequired.Message(),
	)
}
