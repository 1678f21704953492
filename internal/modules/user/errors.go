package user

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("user not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPhoneAlreadyExists = errors.New("phone number already exists")
	ErrHasActiveBookings  = errors.New("user has active bookings and cannot be deleted")
)
