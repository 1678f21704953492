package domain

import "time"

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
	BookingReturned  BookingStatus = "returned"
)

// Terminal reports whether no further status transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingReturned
}

type Booking struct {
	ID            int64         `json:"id"`
	CustomerID    int64         `json:"customer_id"`
	VehicleID     int64         `json:"vehicle_id"`
	RentStartDate time.Time     `json:"rent_start_date"`
	RentEndDate   time.Time     `json:"rent_end_date"`
	TotalPrice    float64       `json:"total_price"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
