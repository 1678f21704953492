package vehicle

import (
	"context"

	"vehiclerental/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int64) (bool, error)
	CountActiveBookings(ctx context.Context, vehicleID int64) (int64, error)
}
