package repository

import (
	"context"
	"errors"
	"time"

	"vehiclerental/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	CustomerID    int64     `gorm:"column:customer_id;not null;index"`
	VehicleID     int64     `gorm:"column:vehicle_id;not null;index"`
	RentStartDate time.Time `gorm:"column:rent_start_date;not null"`
	RentEndDate   time.Time `gorm:"column:rent_end_date;not null;check:chk_booking_dates,rent_end_date > rent_start_date"`
	TotalPrice    float64   `gorm:"column:total_price;not null;check:chk_total_price,total_price > 0"`
	Status        string    `gorm:"column:status;not null;default:active"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		VehicleID:     m.VehicleID,
		RentStartDate: m.RentStartDate,
		RentEndDate:   m.RentEndDate,
		TotalPrice:    m.TotalPrice,
		Status:        domain.BookingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		VehicleID:     b.VehicleID,
		RentStartDate: b.RentStartDate,
		RentEndDate:   b.RentEndDate,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// AdminBookingRow is the admin list view: booking joined with customer and
// vehicle summaries.
type AdminBookingRow struct {
	ID                 int64     `json:"id"`
	CustomerID         int64     `json:"customer_id"`
	CustomerName       string    `json:"customer_name"`
	CustomerEmail      string    `json:"customer_email"`
	VehicleID          int64     `json:"vehicle_id"`
	VehicleName        string    `json:"vehicle_name"`
	RegistrationNumber string    `json:"registration_number"`
	RentStartDate      time.Time `json:"rent_start_date"`
	RentEndDate        time.Time `json:"rent_end_date"`
	TotalPrice         float64   `json:"total_price"`
	Status             string    `json:"status"`
}

// CustomerBookingRow is the self-service list view: no customer columns.
type CustomerBookingRow struct {
	ID                 int64     `json:"id"`
	VehicleID          int64     `json:"vehicle_id"`
	VehicleName        string    `json:"vehicle_name"`
	RegistrationNumber string    `json:"registration_number"`
	Category           string    `json:"category"`
	RentStartDate      time.Time `json:"rent_start_date"`
	RentEndDate        time.Time `json:"rent_end_date"`
	TotalPrice         float64   `json:"total_price"`
	Status             string    `json:"status"`
}

func (r *BookingRepository) ListForAdmin(ctx context.Context) ([]AdminBookingRow, error) {
	var rows []AdminBookingRow
	q := `
SELECT b.id, b.customer_id, u.name AS customer_name, u.email AS customer_email,
       b.vehicle_id, v.vehicle_name, v.registration_number,
       b.rent_start_date, b.rent_end_date, b.total_price, b.status
FROM bookings b
LEFT JOIN users u ON u.id = b.customer_id
LEFT JOIN vehicles v ON v.id = b.vehicle_id
ORDER BY b.id DESC
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) ListForCustomer(ctx context.Context, customerID int64) ([]CustomerBookingRow, error) {
	var rows []CustomerBookingRow
	q := `
SELECT b.id, b.vehicle_id, v.vehicle_name, v.registration_number, v.category,
       b.rent_start_date, b.rent_end_date, b.total_price, b.status
FROM bookings b
LEFT JOIN vehicles v ON v.id = b.vehicle_id
WHERE b.customer_id = ?
ORDER BY b.id DESC
`
	tx := r.db.WithContext(ctx).Raw(q, customerID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
