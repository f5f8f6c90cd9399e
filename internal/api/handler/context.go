package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storerating/platform/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; a missing identity on a protected
// route is a wiring bug surfaced as 401 rather than a panic.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get("identity").(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
