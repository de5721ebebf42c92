package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/roadready/rental-api/internal/api/metrics"
	"github.com/roadready/rental-api/internal/core/domain"
	"github.com/roadready/rental-api/internal/core/ports"
)

// UserService manages application user records. Credentials live in the
// identity store; records created here only ever hold a bcrypt hash.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger, now: time.Now}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, user *domain.User, password string) (int64, error) {
	if err := validatePassword(password); err != nil {
		return 0, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("create user: hash password: %w", err)
	}

	now := s.now().UTC()
	user.PasswordHash = string(hash)
	user.Role = domain.ResolveRole(user.Role)
	user.CreatedAt = now
	user.UpdatedAt = now

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return 0, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("user", "create").Inc()
	s.logger.Info().Int64("user_id", id).Str("role", user.Role).Msg("user created")
	return id, nil
}

func (s *UserService) Update(ctx context.Context, user *domain.User) error {
	if user.ID <= 0 {
		return domain.ErrUserNotFound
	}
	user.Role = domain.ResolveRole(user.Role)
	user.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("user", "update").Inc()
	s.logger.Info().Int64("user_id", user.ID).Msg("user updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("user", "delete").Inc()
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
