package ports

import (
	"context"

	"github.com/roadready/rental-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	ListByCar(ctx context.Context, carID int64) ([]domain.Review, error)
	FindByID(ctx context.Context, id int64) (*domain.Review, error)
	Create(ctx context.Context, r *domain.Review) (int64, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id int64) error
}

type ReviewService interface {
	List(ctx context.Context) ([]domain.Review, error)
	ListByCar(ctx context.Context, carID int64) ([]domain.Review, error)
	Get(ctx context.Context, id int64) (*domain.Review, error)
	Create(ctx context.Context, r *domain.Review) (int64, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id int64) error
}
