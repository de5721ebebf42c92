package ports

import (
	"context"

	"github.com/roadready/rental-api/internal/core/domain"
)

// CarRepository defines persistence operations for cars.
type CarRepository interface {
	List(ctx context.Context) ([]domain.Car, error)
	FindByID(ctx context.Context, id int64) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) (int64, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int64) error
}

type CarService interface {
	List(ctx context.Context) ([]domain.Car, error)
	Get(ctx context.Context, id int64) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) (int64, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int64) error
}
