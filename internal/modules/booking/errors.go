package booking

import "errors"

var (
	ErrValidation         = errors.New("invalid rental duration or date format")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid booking status transition")

	// ErrSweepRunning means a sweep tick overlapped an in-flight run and was
	// skipped.
	ErrSweepRunning = errors.New("sweep already running")
)
