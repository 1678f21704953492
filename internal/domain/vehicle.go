package domain

import "time"

type VehicleCategory string

const (
	CategoryCar  VehicleCategory = "car"
	CategoryBike VehicleCategory = "bike"
	CategoryVan  VehicleCategory = "van"
	CategorySUV  VehicleCategory = "SUV"
)

func (c VehicleCategory) Valid() bool {
	switch c {
	case CategoryCar, CategoryBike, CategoryVan, CategorySUV:
		return true
	}
	return false
}

type AvailabilityStatus string

const (
	VehicleAvailable AvailabilityStatus = "available"
	VehicleBooked    AvailabilityStatus = "booked"
)

// Vehicle availability is owned by the booking lifecycle: it is "booked"
// exactly while one active booking references the vehicle. Fleet CRUD never
// touches it.
type Vehicle struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"vehicle_name"`
	Category           VehicleCategory    `json:"category"`
	RegistrationNumber string             `json:"registration_number"`
	DailyRentPrice     float64            `json:"daily_rent_price"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
