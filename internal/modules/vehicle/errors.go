package vehicle

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("vehicle not found")
	ErrRegistrationExists = errors.New("registration number already exists")
	ErrHasActiveBookings  = errors.New("vehicle has active bookings and cannot be deleted")
)
