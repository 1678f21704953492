package vehicle

type CreateVehicleRequest struct {
	Name               string  `json:"vehicle_name" binding:"required"`
	Category           string  `json:"category" binding:"required"`
	RegistrationNumber string  `json:"registration_number" binding:"required"`
	DailyRentPrice     float64 `json:"daily_rent_price" binding:"required,gt=0"`
}

// UpdateVehicleRequest is a partial update; nil fields are left untouched.
// Availability is deliberately absent: only the booking lifecycle writes it.
type UpdateVehicleRequest struct {
	Name               *string  `json:"vehicle_name"`
	Category           *string  `json:"category"`
	RegistrationNumber *string  `json:"registration_number"`
	DailyRentPrice     *float64 `json:"daily_rent_price"`
}
