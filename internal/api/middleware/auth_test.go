package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/roadready/rental-api/internal/core/service"
)

type stubDenylist struct {
	revoked map[string]bool
	err     error
}

func (d *stubDenylist) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	d.revoked[tokenID] = true
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return d.revoked[tokenID], d.err
}

func newTokens(t *testing.T) *service.TokenService {
	t.Helper()
	tokens, err := service.NewTokenService(service.TokenConfig{Secret: "secret", Issuer: "roadready"})
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	return tokens
}

func runAuth(t *testing.T, header string, denylist *stubDenylist) (echo.Context, error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/car", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	h := Auth(newTokens(t), denylist, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return nil
	})
	return c, h(c), called
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

func TestAuth_ValidToken(t *testing.T) {
	token, _, err := newTokens(t).Issue("alice", []string{"Admin"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	c, err, called := runAuth(t, "Bearer "+token, &stubDenylist{revoked: map[string]bool{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	claims := Claims(c)
	if claims == nil || claims.Username != "alice" {
		t.Fatalf("claims not injected: %+v", claims)
	}
	if roles, _ := c.Get(KeyRoles).([]string); len(roles) != 1 || roles[0] != "Admin" {
		t.Fatalf("unexpected roles in context: %v", roles)
	}
}

func TestAuth_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"empty token":    "Bearer ",
		"garbage token":  "Bearer not.a.jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, err, called := runAuth(t, header, &stubDenylist{revoked: map[string]bool{}})
			if called {
				t.Fatalf("next handler must not run")
			}
			if statusOf(err) != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	tokens := newTokens(t)
	token, _, _ := tokens.Issue("alice", []string{"User"})
	claims, _ := tokens.Verify(token)

	denylist := &stubDenylist{revoked: map[string]bool{claims.TokenID: true}}
	_, err, called := runAuth(t, "Bearer "+token, denylist)
	if called {
		t.Fatalf("next handler must not run")
	}
	if statusOf(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_DenylistOutageAcceptsToken(t *testing.T) {
	token, _, _ := newTokens(t).Issue("alice", []string{"User"})

	denylist := &stubDenylist{revoked: map[string]bool{}, err: errors.New("connection refused")}
	_, err, called := runAuth(t, "Bearer "+token, denylist)
	if err != nil || !called {
		t.Fatalf("expected request to pass, err=%v called=%v", err, called)
	}
}
