package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roadready/rental-api/internal/core/domain"
)

const collectionReviews = "reviews"

type ReviewRepository struct {
	t table[domain.Review]
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{t: newTable[domain.Review](db, collectionReviews, domain.ErrReviewNotFound)}
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	return r.t.find(ctx, bson.M{})
}

func (r *ReviewRepository) ListByCar(ctx context.Context, carID int64) ([]domain.Review, error) {
	return r.t.find(ctx, bson.M{"car_id": carID})
}

func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*domain.Review, error) {
	return r.t.findByID(ctx, id)
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (int64, error) {
	return r.t.insert(ctx, rv, func(id int64) { rv.ID = id })
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.t.set(ctx, rv.ID, bson.M{
		"user_id": rv.UserID,
		"car_id":  rv.CarID,
		"rating":  rv.Rating,
		"comment": rv.Comment,
	})
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	return r.t.index(ctx, "car_id")
}
