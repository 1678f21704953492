package booking

import (
	"context"
	"math"
	"time"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/pkg/authz"
	"vehiclerental/internal/repository"
)

// Service is the booking lifecycle engine. It is the only writer of booking
// statuses and vehicle availability; every mutation runs as one transaction
// with the vehicle (and for updates, the booking) row locked first.
type Service struct {
	txm      TxRunner
	bookings BookingReader
	now      func() time.Time
}

func NewService(txm TxRunner, bookings BookingReader) *Service {
	return &Service{
		txm:      txm,
		bookings: bookings,
		now:      time.Now,
	}
}

// rentalDays rounds the span to whole days; anything shorter than a day
// still bills as one.
func rentalDays(start, end time.Time) int {
	days := int(math.Round(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

func (s *Service) Create(ctx context.Context, p authz.Principal, req CreateBookingRequest) (*BookingResponse, error) {
	if req.RentStartDate.IsZero() || req.RentEndDate.IsZero() || !req.RentEndDate.After(req.RentStartDate) {
		return nil, ErrValidation
	}
	if !authz.CanAccess(p, req.CustomerID, domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	var resp *BookingResponse
	err := s.txm.Do(ctx, func(st repository.Store) error {
		exists, err := st.UserExists(ctx, req.CustomerID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCustomerNotFound
		}

		// The lock closes the gap between observing "available" and flipping
		// it: a concurrent create on the same vehicle waits here and then
		// sees "booked".
		v, err := st.VehicleForUpdate(ctx, req.VehicleID)
		if err != nil {
			return err
		}
		if v == nil {
			return ErrVehicleNotFound
		}
		if v.AvailabilityStatus != domain.VehicleAvailable {
			return ErrVehicleUnavailable
		}

		days := rentalDays(req.RentStartDate, req.RentEndDate)
		b := &domain.Booking{
			CustomerID:    req.CustomerID,
			VehicleID:     req.VehicleID,
			RentStartDate: req.RentStartDate,
			RentEndDate:   req.RentEndDate,
			TotalPrice:    v.DailyRentPrice * float64(days),
			Status:        domain.BookingActive,
		}

		if err := st.InsertBooking(ctx, b); err != nil {
			return err
		}
		if err := st.SetVehicleAvailability(ctx, v.ID, domain.VehicleBooked); err != nil {
			return err
		}

		resp = &BookingResponse{
			Booking: *b,
			Vehicle: VehicleSnapshot{
				VehicleName:    v.Name,
				DailyRentPrice: v.DailyRentPrice,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateStatus drives the two manual transitions: active→cancelled (owner or
// admin, before the rental starts) and active→returned (admin). Both free
// the vehicle in the same transaction.
func (s *Service) UpdateStatus(ctx context.Context, p authz.Principal, bookingID int64, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if newStatus != domain.BookingCancelled && newStatus != domain.BookingReturned {
		return nil, ErrValidation
	}

	var out *domain.Booking
	err := s.txm.Do(ctx, func(st repository.Store) error {
		b, err := st.BookingForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}

		switch newStatus {
		case domain.BookingCancelled:
			if !authz.CanAccess(p, b.CustomerID, domain.RoleAdmin) {
				return ErrForbidden
			}
			if b.Status != domain.BookingActive {
				return ErrInvalidTransition
			}
			if !s.now().Before(b.RentStartDate) {
				return ErrInvalidTransition
			}
		case domain.BookingReturned:
			if !authz.IsAdmin(p) {
				return ErrForbidden
			}
			if b.Status != domain.BookingActive {
				return ErrInvalidTransition
			}
		}

		if err := st.SetBookingStatus(ctx, b.ID, newStatus); err != nil {
			return err
		}
		if err := st.SetVehicleAvailability(ctx, b.VehicleID, domain.VehicleAvailable); err != nil {
			return err
		}

		b.Status = newStatus
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll is the admin view: every booking with customer and vehicle
// summaries, newest first.
func (s *Service) ListAll(ctx context.Context) ([]repository.AdminBookingRow, error) {
	return s.bookings.ListForAdmin(ctx)
}

// ListOwn is the customer view of their own bookings.
func (s *Service) ListOwn(ctx context.Context, customerID int64) ([]repository.CustomerBookingRow, error) {
	return s.bookings.ListForCustomer(ctx, customerID)
}
