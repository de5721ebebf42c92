package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roadready/rental-api/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	t table[domain.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{t: newTable[domain.User](db, collectionUsers, domain.ErrUserNotFound)}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.t.find(ctx, bson.M{})
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.t.findByID(ctx, id)
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	return r.t.insert(ctx, u, func(id int64) { u.ID = id })
}

// Update overwrites the profile fields; password_hash and created_at are never touched.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.t.set(ctx, u.ID, bson.M{
		"name":         u.Name,
		"email":        u.Email,
		"phone_number": u.PhoneNumber,
		"role":         u.Role,
		"updated_at":   u.UpdatedAt,
	})
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.t.delete(ctx, id)
}

func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	return r.t.index(ctx, "email")
}
