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

type ReservationService struct {
	repo   ports.ReservationRepository
	cars   ports.CarRepository
	users  ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewReservationService(
	repo ports.ReservationRepository,
	cars ports.CarRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *ReservationService {
	return &ReservationService{repo: repo, cars: cars, users: users, logger: logger, now: time.Now}
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return out, nil
}

// ListByCar returns the car's reservations; an existing car with none yields
// an empty slice.
func (s *ReservationService) ListByCar(ctx context.Context, carID int64) ([]domain.Reservation, error) {
	if _, err := s.cars.FindByID(ctx, carID); err != nil {
		return nil, err
	}
	out, err := s.repo.ListByCar(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by car: %w", err)
	}
	if out == nil {
		out = []domain.Reservation{}
	}
	return out, nil
}

func (s *ReservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ReservationService) Create(ctx context.Context, r *domain.Reservation) (int64, error) {
	if err := s.check(ctx, r); err != nil {
		return 0, err
	}
	if r.Status == "" {
		r.Status = domain.ReservationPending
	}
	r.CreatedAt = s.now().UTC()

	id, err := s.repo.Create(ctx, r)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create reservation")
		return 0, err
	}
	metrics.EntityMutationsTotal.WithLabelValues("reservation", "create").Inc()
	s.logger.Info().Int64("reservation_id", id).Int64("car_id", r.CarID).Int64("user_id", r.UserID).Msg("reservation created")
	return id, nil
}

func (s *ReservationService) Update(ctx context.Context, r *domain.Reservation) error {
	if r.ID <= 0 {
		return domain.ErrReservationNotFound
	}
	if err := s.check(ctx, r); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("reservation", "update").Inc()
	s.logger.Info().Int64("reservation_id", r.ID).Msg("reservation updated")
	return nil
}

func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("reservation", "delete").Inc()
	s.logger.Info().Int64("reservation_id", id).Msg("reservation deleted")
	return nil
}

// check validates the date range and that the referenced car and user exist.
func (s *ReservationService) check(ctx context.Context, r *domain.Reservation) error {
	if !r.DropoffDate.After(r.PickupDate) {
		return fmt.Errorf("%w: dropoff date must be after pickup date", domain.ErrValidation)
	}
	if _, err := s.cars.FindByID(ctx, r.CarID); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, r.UserID); err != nil {
		return err
	}
	return nil
}
