// @title                       RoadReady Rental API
// @version                     1.0
// @description                 Car rental management: users, cars, reservations, reviews and payments behind JWT authentication.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/roadready/rental-api/internal/api"
	"github.com/roadready/rental-api/internal/api/handler"
	"github.com/roadready/rental-api/internal/core/ports"
	"github.com/roadready/rental-api/internal/core/service"
	"github.com/roadready/rental-api/internal/infrastructure/cache"
	mongodb "github.com/roadready/rental-api/internal/infrastructure/db/mongo"
	redisdb "github.com/roadready/rental-api/internal/infrastructure/db/redis"
	"github.com/roadready/rental-api/internal/pkg/config"
	"github.com/roadready/rental-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "rental-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	identities := mongodb.NewIdentityRepository(db)
	roles := mongodb.NewRoleRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	carRepo := mongodb.NewCarRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	if err := mongodb.EnsureIndexes(ctx, identities, userRepo, carRepo, reservationRepo, reviewRepo, paymentRepo); err != nil {
		return err
	}

	checks := []handler.DependencyCheck{{
		Name: "mongodb",
		Ping: func(ctx context.Context) error { return client.Ping(ctx, nil) },
	}}

	var denylist ports.TokenDenylist
	switch cfg.DenylistBackend {
	case config.DenylistMemory:
		denylist = cache.NewDenylist()
		log.Warn().Msg("using in-memory token denylist; revocations are not shared between instances")
	default:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		redisDenylist := redisdb.NewDenylist(rdb)
		denylist = redisDenylist
		checks = append(checks, handler.DependencyCheck{Name: "redis", Ping: redisDenylist.Ping})
	}

	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL,
	})
	if err != nil {
		return err
	}

	e := api.NewRouter(api.RouterConfig{
		Logger:         log,
		Auth:           service.NewAuthService(identities, roles, userRepo, tokens, denylist, logger.Component("auth")),
		Users:          service.NewUserService(userRepo, logger.Component("users")),
		Cars:           service.NewCarService(carRepo, logger.Component("cars")),
		Reservations:   service.NewReservationService(reservationRepo, carRepo, userRepo, logger.Component("reservations")),
		Reviews:        service.NewReviewService(reviewRepo, carRepo, logger.Component("reviews")),
		Payments:       service.NewPaymentService(paymentRepo, userRepo, logger.Component("payments")),
		Tokens:         tokens,
		Denylist:       denylist,
		HealthChecks:   checks,
		RequestTimeout: cfg.RequestTimeout,
		AllowOrigins:   cfg.CORSAllowOrigins,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
