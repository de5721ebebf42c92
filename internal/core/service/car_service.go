package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/roadready/rental-api/internal/api/metrics"
	"github.com/roadready/rental-api/internal/core/domain"
	"github.com/roadready/rental-api/internal/core/ports"
)

type CarService struct {
	repo   ports.CarRepository
	logger zerolog.Logger
}

func NewCarService(repo ports.CarRepository, logger zerolog.Logger) *CarService {
	return &CarService{repo: repo, logger: logger}
}

func (s *CarService) List(ctx context.Context) ([]domain.Car, error) {
	cars, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	return cars, nil
}

func (s *CarService) Get(ctx context.Context, id int64) (*domain.Car, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CarService) Create(ctx context.Context, car *domain.Car) (int64, error) {
	if car.PricePerDay < 0 {
		return 0, fmt.Errorf("%w: price per day cannot be negative", domain.ErrValidation)
	}
	id, err := s.repo.Create(ctx, car)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create car")
		return 0, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("car", "create").Inc()
	s.logger.Info().Int64("car_id", id).Str("make", car.Make).Str("model", car.Model).Msg("car created")
	return id, nil
}

func (s *CarService) Update(ctx context.Context, car *domain.Car) error {
	if car.ID <= 0 {
		return domain.ErrCarNotFound
	}
	if car.PricePerDay < 0 {
		return fmt.Errorf("%w: price per day cannot be negative", domain.ErrValidation)
	}
	if err := s.repo.Update(ctx, car); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("car", "update").Inc()
	s.logger.Info().Int64("car_id", car.ID).Msg("car updated")
	return nil
}

func (s *CarService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("car", "delete").Inc()
	s.logger.Info().Int64("car_id", id).Msg("car deleted")
	return nil
}
