package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roadready/rental-api/internal/core/domain"
)

const collectionPayments = "payments"

type PaymentRepository struct {
	t table[domain.Payment]
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{t: newTable[domain.Payment](db, collectionPayments, domain.ErrPaymentNotFound)}
}

func (r *PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	return r.t.find(ctx, bson.M{})
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	return r.t.find(ctx, bson.M{"user_id": userID})
}

func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.t.findByID(ctx, id)
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (int64, error) {
	return r.t.insert(ctx, p, func(id int64) { p.ID = id })
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	return r.t.set(ctx, p.ID, bson.M{
		"user_id":        p.UserID,
		"reservation_id": p.ReservationID,
		"amount":         p.Amount,
		"method":         p.Method,
		"status":         p.Status,
		"paid_at":        p.PaidAt,
	})
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	return r.t.index(ctx, "user_id")
}
