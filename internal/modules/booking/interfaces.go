package booking

import (
	"context"

	"vehiclerental/internal/repository"
)

// TxRunner executes fn inside one storage transaction; the Store it passes
// carries the row-locking reads and the writes paired with them.
type TxRunner interface {
	Do(ctx context.Context, fn func(s repository.Store) error) error
}

// BookingReader serves the lock-free list views.
type BookingReader interface {
	ListForAdmin(ctx context.Context) ([]repository.AdminBookingRow, error)
	ListForCustomer(ctx context.Context, customerID int64) ([]repository.CustomerBookingRow, error)
}
