package repository

import (
	"context"
	"errors"
	"time"

	"vehiclerental/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	Name               string    `gorm:"column:vehicle_name;not null"`
	Category           string    `gorm:"column:category;not null"`
	RegistrationNumber string    `gorm:"column:registration_number;uniqueIndex;not null"`
	DailyRentPrice     float64   `gorm:"column:daily_rent_price;not null;check:chk_daily_rent_price,daily_rent_price > 0"`
	AvailabilityStatus string    `gorm:"column:availability_status;not null;default:available"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	return &domain.Vehicle{
		ID:                 m.ID,
		Name:               m.Name,
		Category:           domain.VehicleCategory(m.Category),
		RegistrationNumber: m.RegistrationNumber,
		DailyRentPrice:     m.DailyRentPrice,
		AvailabilityStatus: domain.AvailabilityStatus(m.AvailabilityStatus),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	return vehicleModel{
		ID:                 v.ID,
		Name:               v.Name,
		Category:           string(v.Category),
		RegistrationNumber: v.RegistrationNumber,
		DailyRentPrice:     v.DailyRentPrice,
		AvailabilityStatus: string(v.AvailabilityStatus),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	var ms []vehicleModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Vehicle, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainVehicle(m))
	}
	return out, nil
}

// Update persists fleet attributes only. availability_status is never
// written here: it belongs to the booking lifecycle, and writing back the
// copy read before a concurrent booking would silently free a booked vehicle.
func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	tx := r.db.WithContext(ctx).Model(&vehicleModel{}).Where("id = ?", v.ID).
		Updates(map[string]any{
			"vehicle_name":        v.Name,
			"category":            string(v.Category),
			"registration_number": v.RegistrationNumber,
			"daily_rent_price":    v.DailyRentPrice,
			"updated_at":          time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}

	var m vehicleModel
	if err := r.db.WithContext(ctx).First(&m, v.ID).Error; err != nil {
		return err
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&vehicleModel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *VehicleRepository) CountActiveBookings(ctx context.Context, vehicleID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("vehicle_id = ? AND status = ?", vehicleID, string(domain.BookingActive)).
		Count(&cnt)
	return cnt, tx.Error
}
