package booking

import (
	"time"

	"vehiclerental/internal/domain"
)

type CreateBookingRequest struct {
	CustomerID    int64     `json:"customer_id" binding:"required"`
	VehicleID     int64     `json:"vehicle_id" binding:"required"`
	RentStartDate time.Time `json:"rent_start_date" binding:"required"`
	RentEndDate   time.Time `json:"rent_end_date" binding:"required"`
}

type UpdateBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

// VehicleSnapshot is the vehicle summary embedded in booking responses.
type VehicleSnapshot struct {
	VehicleName    string  `json:"vehicle_name"`
	DailyRentPrice float64 `json:"daily_rent_price"`
}

type BookingResponse struct {
	domain.Booking
	Vehicle VehicleSnapshot `json:"vehicle"`
}
