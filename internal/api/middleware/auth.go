package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/roadready/rental-api/internal/core/ports"
)

// Context keys populated by Auth.
const (
	KeyClaims   = "claims"
	KeyUsername = "username"
	KeyRoles    = "roles"
)

// Auth validates the bearer token, rejects revoked token ids and injects the
// claims into the echo context. A denylist outage is logged and the token is
// accepted.
func Auth(verifier ports.TokenVerifier, denylist ports.TokenDenylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if denylist != nil && claims.TokenID != "" {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					log.Warn().Err(err).Str("jti", claims.TokenID).Msg("denylist check failed, accepting token")
				} else if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set(KeyClaims, claims)
			c.Set(KeyUsername, claims.Username)
			c.Set(KeyRoles, claims.Roles)

			return next(c)
		}
	}
}

// Claims returns the claims stored by Auth, or nil when Auth did not run.
func Claims(c echo.Context) *ports.TokenClaims {
	claims, _ := c.Get(KeyClaims).(*ports.TokenClaims)
	return claims
}
