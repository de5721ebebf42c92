package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roadready/rental-api/internal/core/domain"
)

const collectionCars = "cars"

type CarRepository struct {
	t table[domain.Car]
}

func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{t: newTable[domain.Car](db, collectionCars, domain.ErrCarNotFound)}
}

func (r *CarRepository) List(ctx context.Context) ([]domain.Car, error) {
	return r.t.find(ctx, bson.M{})
}

func (r *CarRepository) FindByID(ctx context.Context, id int64) (*domain.Car, error) {
	return r.t.findByID(ctx, id)
}

func (r *CarRepository) Create(ctx context.Context, c *domain.Car) (int64, error) {
	return r.t.insert(ctx, c, func(id int64) { c.ID = id })
}

func (r *CarRepository) Update(ctx context.Context, c *domain.Car) error {
	return r.t.set(ctx, c.ID, bson.M{
		"make":          c.Make,
		"model":         c.Model,
		"year":          c.Year,
		"plate":         c.Plate,
		"location":      c.Location,
		"price_per_day": c.PricePerDay,
		"available":     c.Available,
	})
}

func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

func (r *CarRepository) EnsureIndexes(ctx context.Context) error {
	return r.t.index(ctx, "plate", "location")
}
