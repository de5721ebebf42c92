package ports

import (
	"context"

	"github.com/roadready/rental-api/internal/core/domain"
)

// UserRepository persists application user records.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (int64, error)
	// Update leaves the stored password hash untouched.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User, password string) (int64, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}
