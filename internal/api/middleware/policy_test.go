package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/roadready/rental-api/internal/core/ports"
)

func runAuthorize(t *testing.T, p Policy, method, route string, claims *ports.TokenClaims) (error, bool) {
	t.Helper()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(method, "/", nil), httptest.NewRecorder())
	c.SetPath(route)
	if claims != nil {
		c.Set(KeyClaims, claims)
	}

	called := false
	err := Authorize(p)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	return err, called
}

func TestAuthorize_AllowsMatchingRole(t *testing.T) {
	p := Policy{}.Require(http.MethodPost, "/api/car", "Admin")

	err, called := runAuthorize(t, p, http.MethodPost, "/api/car", &ports.TokenClaims{Roles: []string{"Admin"}})
	if err != nil || !called {
		t.Fatalf("expected pass, err=%v called=%v", err, called)
	}
}

func TestAuthorize_ForbidsMissingRole(t *testing.T) {
	p := Policy{}.Require(http.MethodPost, "/api/car", "Admin")

	err, called := runAuthorize(t, p, http.MethodPost, "/api/car", &ports.TokenClaims{Roles: []string{"User"}})
	if called {
		t.Fatalf("should not reach next handler")
	}
	if statusOf(err) != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestAuthorize_AnyOfSeveralRoles(t *testing.T) {
	p := Policy{}.Require(http.MethodGet, "/api/reservation/:id", "Admin", "User")

	err, called := runAuthorize(t, p, http.MethodGet, "/api/reservation/:id", &ports.TokenClaims{Roles: []string{"User"}})
	if err != nil || !called {
		t.Fatalf("expected pass, err=%v called=%v", err, called)
	}
	err, called = runAuthorize(t, p, http.MethodGet, "/api/reservation/:id", &ports.TokenClaims{})
	if called || statusOf(err) != http.StatusForbidden {
		t.Fatalf("expected 403 for caller without roles, got %v", err)
	}
}

func TestAuthorize_UnlistedRouteOpenToAnyCaller(t *testing.T) {
	p := Policy{}.Require(http.MethodPost, "/api/car", "Admin")

	err, called := runAuthorize(t, p, http.MethodGet, "/api/car", &ports.TokenClaims{})
	if err != nil || !called {
		t.Fatalf("expected pass, err=%v called=%v", err, called)
	}
}

func TestAuthorize_RequiresClaimsOnRestrictedRoute(t *testing.T) {
	p := Policy{}.Require(http.MethodDelete, "/api/car/:id", "Admin")

	err, called := runAuthorize(t, p, http.MethodDelete, "/api/car/:id", nil)
	if called || statusOf(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
