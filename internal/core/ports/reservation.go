package ports

import (
	"context"

	"github.com/roadready/rental-api/internal/core/domain"
)

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByCar(ctx context.Context, carID int64) ([]domain.Reservation, error)
	FindByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Create(ctx context.Context, r *domain.Reservation) (int64, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
}

type ReservationService interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByCar(ctx context.Context, carID int64) ([]domain.Reservation, error)
	Get(ctx context.Context, id int64) (*domain.Reservation, error)
	Create(ctx context.Context, r *domain.Reservation) (int64, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
}
