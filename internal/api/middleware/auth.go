package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/pkg/token"
)

// identityKey is the context key the Auth middleware stores the verified
// identity under. Handlers retrieve it through handler.CtxIdentity.
const identityKey = "identity"

// Auth validates the bearer token and injects the verified identity into
// context. Every failure mode produces the same 401 so callers cannot
// distinguish a missing token from an expired or forged one; the
// distinction is only logged.
func Auth(tokens *token.Manager, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					log.Debug().Str("path", c.Path()).Msg("expired token rejected")
				} else {
					log.Debug().Str("path", c.Path()).Msg("invalid token rejected")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}
