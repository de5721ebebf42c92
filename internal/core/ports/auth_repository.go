package ports

import (
	"context"

	"github.com/roadready/rental-api/internal/core/domain"
)

// IdentityRepository persists credential records.
type IdentityRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	// Create returns domain.ErrUserExists when the username or email is taken.
	Create(ctx context.Context, identity *domain.Identity) error
	AddToRole(ctx context.Context, username, role string) error
	Delete(ctx context.Context, username string) error
}

// RoleRepository is the role registry. Roles must exist before assignment.
type RoleRepository interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string) error
}
