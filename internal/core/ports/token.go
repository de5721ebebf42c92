package ports

import (
	"context"
	"time"
)

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	Username  string
	TokenID   string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasAnyRole reports whether the claims carry at least one of roles.
func (c *TokenClaims) HasAnyRole(roles ...string) bool {
	for _, have := range c.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// TokenIssuer signs tokens for an authenticated identity.
type TokenIssuer interface {
	Issue(username string, roles []string) (token string, expiresAt time.Time, err error)
}

// TokenVerifier checks signature, issuer, audience and expiry.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// TokenDenylist records revoked token ids until they would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
