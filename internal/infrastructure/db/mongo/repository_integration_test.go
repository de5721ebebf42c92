//go:build integration

package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roadready/rental-api/internal/core/domain"
)

func startMongo(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, db, err := Connect(ctx, Config{URI: uri, Database: "rental_test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return db
}

func TestRepositories_Integration(t *testing.T) {
	db := startMongo(t)
	ctx := context.Background()

	identities := NewIdentityRepository(db)
	roles := NewRoleRepository(db)
	users := NewUserRepository(db)
	cars := NewCarRepository(db)
	reservations := NewReservationRepository(db)
	reviews := NewReviewRepository(db)
	payments := NewPaymentRepository(db)
	require.NoError(t, EnsureIndexes(ctx, identities, users, cars, reservations, reviews, payments))

	t.Run("identity uniqueness", func(t *testing.T) {
		now := time.Now().UTC()
		id := &domain.Identity{Username: "bob", Email: "bob@x.io", PasswordHash: "h", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, identities.Create(ctx, id))
		assert.NotEmpty(t, id.ID)

		err := identities.Create(ctx, &domain.Identity{Username: "robert", Email: "bob@x.io"})
		assert.ErrorIs(t, err, domain.ErrUserExists)

		_, err = identities.FindByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})

	t.Run("roles", func(t *testing.T) {
		ok, err := roles.Exists(ctx, domain.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, roles.Create(ctx, domain.RoleAdmin))
		require.NoError(t, roles.Create(ctx, domain.RoleAdmin))
		ok, err = roles.Exists(ctx, domain.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, identities.AddToRole(ctx, "bob", domain.RoleAdmin))
		require.NoError(t, identities.AddToRole(ctx, "bob", domain.RoleAdmin))
		got, err := identities.FindByEmail(ctx, "bob@x.io")
		require.NoError(t, err)
		assert.Equal(t, []string{domain.RoleAdmin}, got.Roles)

		require.NoError(t, identities.Create(ctx, &domain.Identity{Username: "carl", Email: "carl@x.io"}))
		require.NoError(t, identities.Delete(ctx, "carl"))
		_, err = identities.FindByEmail(ctx, "carl@x.io")
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
		assert.ErrorIs(t, identities.Delete(ctx, "carl"), domain.ErrIdentityNotFound)
	})

	t.Run("sequential ids and crud", func(t *testing.T) {
		first, err := cars.Create(ctx, &domain.Car{Make: "Ford", Model: "Focus", PricePerDay: 30})
		require.NoError(t, err)
		second, err := cars.Create(ctx, &domain.Car{Make: "Kia", Model: "Rio", PricePerDay: 25})
		require.NoError(t, err)
		assert.Equal(t, first+1, second)

		require.NoError(t, cars.Update(ctx, &domain.Car{ID: first, Make: "Ford", Model: "Fiesta", PricePerDay: 28}))
		car, err := cars.FindByID(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, "Fiesta", car.Model)

		assert.ErrorIs(t, cars.Delete(ctx, 999), domain.ErrCarNotFound)
		assert.ErrorIs(t, cars.Update(ctx, &domain.Car{ID: 999}), domain.ErrCarNotFound)
		all, err := cars.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("user update keeps hash", func(t *testing.T) {
		id, err := users.Create(ctx, &domain.User{Name: "bob", Email: "bob@x.io", PasswordHash: "hash", Role: domain.RoleUser})
		require.NoError(t, err)
		require.NoError(t, users.Update(ctx, &domain.User{ID: id, Name: "robert", Role: domain.RoleUser}))

		u, err := users.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "robert", u.Name)
		assert.Equal(t, "hash", u.PasswordHash)
	})

	t.Run("children by parent", func(t *testing.T) {
		out, err := reviews.ListByCar(ctx, 12345)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)

		_, err = reviews.Create(ctx, &domain.Review{CarID: 1, UserID: 1, Rating: 4})
		require.NoError(t, err)
		out, err = reviews.ListByCar(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, out, 1)

		_, err = payments.Create(ctx, &domain.Payment{UserID: 1, Amount: 10, Status: domain.PaymentPending})
		require.NoError(t, err)
		pays, err := payments.ListByUser(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, pays, 1)

		_, err = reservations.Create(ctx, &domain.Reservation{CarID: 1, UserID: 1, Status: domain.ReservationPending})
		require.NoError(t, err)
		res, err := reservations.ListByCar(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})
}
