package ports

import (
	"context"

	"github.com/roadready/rental-api/internal/core/domain"
)

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
	FindByID(ctx context.Context, id int64) (*domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) (int64, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int64) error
}

type PaymentService interface {
	List(ctx context.Context) ([]domain.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
	Get(ctx context.Context, id int64) (*domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) (int64, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int64) error
}
