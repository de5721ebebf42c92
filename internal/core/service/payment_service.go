package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/roadready/rental-api/internal/api/metrics"
	"github.com/roadready/rental-api/internal/core/domain"
	"github.com/roadready/rental-api/internal/core/ports"
)

type PaymentService struct {
	repo   ports.PaymentRepository
	users  ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewPaymentService(repo ports.PaymentRepository, users ports.UserRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, users: users, logger: logger, now: time.Now}
}

func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return out, nil
}

// ListByUser returns the user's payments; an existing user with none yields
// an empty slice.
func (s *PaymentService) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list payments by user: %w", err)
	}
	if out == nil {
		out = []domain.Payment{}
	}
	return out, nil
}

func (s *PaymentService) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaymentService) Create(ctx context.Context, p *domain.Payment) (int64, error) {
	if err := s.check(ctx, p); err != nil {
		return 0, err
	}
	if p.Status == "" {
		p.Status = domain.PaymentPending
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = s.now().UTC()
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create payment")
		return 0, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("payment", "create").Inc()
	s.logger.Info().Int64("payment_id", id).Int64("user_id", p.UserID).Float64("amount", p.Amount).Msg("payment created")
	return id, nil
}

func (s *PaymentService) Update(ctx context.Context, p *domain.Payment) error {
	if p.ID <= 0 {
		return domain.ErrPaymentNotFound
	}
	if err := s.check(ctx, p); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("payment", "update").Inc()
	s.logger.Info().Int64("payment_id", p.ID).Msg("payment updated")
	return nil
}

func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("payment", "delete").Inc()
	s.logger.Info().Int64("payment_id", id).Msg("payment deleted")
	return nil
}

func (s *PaymentService) check(ctx context.Context, p *domain.Payment) error {
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than 0", domain.ErrValidation)
	}
	_, err := s.users.FindByID(ctx, p.UserID)
	return err
}
