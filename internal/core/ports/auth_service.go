package ports

import (
	"context"
	"time"
)

// RegisterInput carries the registration form.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	PhoneNumber string
	Role        string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token      string
	Expiration time.Time
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, claims *TokenClaims) error
}
