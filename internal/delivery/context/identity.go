package context

import (
	"log/slog"

	"cabinet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	KeyUserID    ContextKey = "user_id"
	KeyRoleClaim ContextKey = "role_claim"
)

// SetIdentity stores the authenticated principal in echo.Context and extends
// the request-scoped logger with it, so service logs name the acting user.
func SetIdentity(c echo.Context, userID uuid.UUID, role entity.RoleClaim) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoleClaim), role)

	ctx := c.Request().Context()
	if logger := GetLogger(ctx); logger != nil {
		logger = logger.With(
			slog.String("user_id", userID.String()),
			slog.String("role", role.ResolveCode()),
		)
		c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
	}
}

// GetUserID returns the authenticated user's ID, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetRoleClaim returns the authenticated user's role claim. The zero claim
// is returned when none was set.
func GetRoleClaim(c echo.Context) entity.RoleClaim {
	role, _ := c.Get(string(KeyRoleClaim)).(entity.RoleClaim)

	return role
}
