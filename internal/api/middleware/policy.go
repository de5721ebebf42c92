package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roadready/rental-api/internal/api/metrics"
)

// Policy maps "METHOD route" to the roles allowed to call it. A route with no
// entry is open to any authenticated caller.
type Policy map[string][]string

func policyKey(method, route string) string {
	return method + " " + route
}

// Require records that method on route needs one of roles.
func (p Policy) Require(method, route string, roles ...string) Policy {
	p[policyKey(method, route)] = roles
	return p
}

// Roles returns the roles required for method on route, or nil if unrestricted.
func (p Policy) Roles(method, route string) []string {
	return p[policyKey(method, route)]
}

// Authorize enforces p on the matched route. It must run after Auth.
func Authorize(p Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method, route := c.Request().Method, c.Path()
			required := p.Roles(method, route)
			if len(required) == 0 {
				return next(c)
			}

			claims := Claims(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !claims.HasAnyRole(required...) {
				metrics.AuthorizationDeniedTotal.WithLabelValues(method, route).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
