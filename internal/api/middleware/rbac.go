package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storerating/platform/internal/core/domain"
)

// RBAC restricts a route group to the given roles. It reads the identity
// injected by Auth, so it must be registered after it. Role checks are
// exact membership: no role implies another.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(identityKey).(domain.Identity)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if err := domain.AuthorizeAny(identity, allowedRoles...); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
