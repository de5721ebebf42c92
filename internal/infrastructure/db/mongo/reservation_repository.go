package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roadready/rental-api/internal/core/domain"
)

const collectionReservations = "reservations"

type ReservationRepository struct {
	t table[domain.Reservation]
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{t: newTable[domain.Reservation](db, collectionReservations, domain.ErrReservationNotFound)}
}

func (r *ReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.t.find(ctx, bson.M{})
}

func (r *ReservationRepository) ListByCar(ctx context.Context, carID int64) ([]domain.Reservation, error) {
	return r.t.find(ctx, bson.M{"car_id": carID})
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.t.findByID(ctx, id)
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (int64, error) {
	return r.t.insert(ctx, res, func(id int64) { res.ID = id })
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	return r.t.set(ctx, res.ID, bson.M{
		"user_id":      res.UserID,
		"car_id":       res.CarID,
		"pickup_date":  res.PickupDate,
		"dropoff_date": res.DropoffDate,
		"total_price":  res.TotalPrice,
		"status":       res.Status,
	})
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	return r.t.index(ctx, "car_id", "user_id")
}
