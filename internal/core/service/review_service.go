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

type ReviewService struct {
	repo   ports.ReviewRepository
	cars   ports.CarRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewReviewService(repo ports.ReviewRepository, cars ports.CarRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, cars: cars, logger: logger, now: time.Now}
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return out, nil
}

func (s *ReviewService) ListByCar(ctx context.Context, carID int64) ([]domain.Review, error) {
	if _, err := s.cars.FindByID(ctx, carID); err != nil {
		return nil, err
	}
	out, err := s.repo.ListByCar(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by car: %w", err)
	}
	if out == nil {
		out = []domain.Review{}
	}
	return out, nil
}

func (s *ReviewService) Get(ctx context.Context, id int64) (*domain.Review, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ReviewService) Create(ctx context.Context, r *domain.Review) (int64, error) {
	if err := s.check(ctx, r); err != nil {
		return 0, err
	}
	r.CreatedAt = s.now().UTC()

	id, err := s.repo.Create(ctx, r)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create review")
		return 0, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("review", "create").Inc()
	s.logger.Info().Int64("review_id", id).Int64("car_id", r.CarID).Msg("review created")
	return id, nil
}

func (s *ReviewService) Update(ctx context.Context, r *domain.Review) error {
	if r.ID <= 0 {
		return domain.ErrReviewNotFound
	}
	if err := s.check(ctx, r); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("review", "update").Inc()
	s.logger.Info().Int64("review_id", r.ID).Msg("review updated")
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("review", "delete").Inc()
	s.logger.Info().Int64("review_id", id).Msg("review deleted")
	return nil
}

func (s *ReviewService) check(ctx context.Context, r *domain.Review) error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	_, err := s.cars.FindByID(ctx, r.CarID)
	return err
}
