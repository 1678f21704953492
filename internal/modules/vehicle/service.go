package vehicle

import (
	"context"
	"errors"
	"strings"

	"vehiclerental/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	vehicles VehicleRepository
}

func NewService(vehicles VehicleRepository) *Service {
	return &Service{vehicles: vehicles}
}

func (s *Service) Create(ctx context.Context, req CreateVehicleRequest) (*domain.Vehicle, error) {
	category := domain.VehicleCategory(req.Category)
	if !category.Valid() {
		return nil, ErrValidation
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.RegistrationNumber) == "" {
		return nil, ErrValidation
	}

	v := &domain.Vehicle{
		Name:               req.Name,
		Category:           category,
		RegistrationNumber: req.RegistrationNumber,
		DailyRentPrice:     req.DailyRentPrice,
		AvailabilityStatus: domain.VehicleAvailable,
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, mapUniqueViolation(err)
	}
	return v, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	if req.Name == nil && req.Category == nil && req.RegistrationNumber == nil && req.DailyRentPrice == nil {
		return nil, ErrValidation
	}

	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrValidation
		}
		v.Name = *req.Name
	}
	if req.Category != nil {
		category := domain.VehicleCategory(*req.Category)
		if !category.Valid() {
			return nil, ErrValidation
		}
		v.Category = category
	}
	if req.RegistrationNumber != nil {
		if strings.TrimSpace(*req.RegistrationNumber) == "" {
			return nil, ErrValidation
		}
		v.RegistrationNumber = *req.RegistrationNumber
	}
	if req.DailyRentPrice != nil {
		if *req.DailyRentPrice <= 0 {
			return nil, ErrValidation
		}
		v.DailyRentPrice = *req.DailyRentPrice
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, mapUniqueViolation(err)
	}
	return v, nil
}

// Delete refuses while an active booking still references the vehicle.
func (s *Service) Delete(ctx context.Context, id int64) error {
	active, err := s.vehicles.CountActiveBookings(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrHasActiveBookings
	}

	deleted, err := s.vehicles.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrRegistrationExists
	}
	return err
}
