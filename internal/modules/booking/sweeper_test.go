package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSweeper_ReturnsOnlyOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	overdue := domain.Booking{ID: 1, VehicleID: 10, Status: domain.BookingActive,
		RentEndDate: today.AddDate(0, 0, -1)}

	store := new(MockStore)
	// The store query filters by the cutoff; only the overdue row comes back.
	store.On("ExpiredActiveBookings", mock.Anything, today).
		Return([]domain.Booking{overdue}, nil)
	store.On("SetBookingStatus", mock.Anything, int64(1), domain.BookingReturned).Return(nil)
	store.On("SetVehicleAvailability", mock.Anything, int64(10), domain.VehicleAvailable).Return(nil)

	sw := NewSweeper(&stubTxRunner{store: store}, time.Hour)
	sw.now = func() time.Time { return now }

	n, err := sw.RunOnce(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	store.AssertExpectations(t)
}

func TestSweeper_NothingToDo(t *testing.T) {
	store := new(MockStore)
	store.On("ExpiredActiveBookings", mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)

	sw := NewSweeper(&stubTxRunner{store: store}, time.Hour)

	n, err := sw.RunOnce(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, n)
	store.AssertNotCalled(t, "SetBookingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweeper_FailureAbortsWholeRun(t *testing.T) {
	boom := errors.New("availability write failed")

	bookings := []domain.Booking{
		{ID: 1, VehicleID: 10, Status: domain.BookingActive},
		{ID: 2, VehicleID: 11, Status: domain.BookingActive},
	}

	store := new(MockStore)
	store.On("ExpiredActiveBookings", mock.Anything, mock.Anything).Return(bookings, nil)
	store.On("SetBookingStatus", mock.Anything, int64(1), domain.BookingReturned).Return(nil)
	store.On("SetVehicleAvailability", mock.Anything, int64(10), domain.VehicleAvailable).Return(boom)

	sw := NewSweeper(&stubTxRunner{store: store}, time.Hour)

	n, err := sw.RunOnce(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, n)
	// The second booking was never touched; the tx runner rolls back the first.
	store.AssertNotCalled(t, "SetBookingStatus", mock.Anything, int64(2), mock.Anything)
}

// blockingTxRunner parks Do until released, so two RunOnce calls overlap.
type blockingTxRunner struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingTxRunner) Do(ctx context.Context, fn func(repository.Store) error) error {
	r.once.Do(func() { close(r.entered) })
	<-r.release
	return nil
}

func TestSweeper_SingleFlight(t *testing.T) {
	runner := &blockingTxRunner{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	sw := NewSweeper(runner, time.Hour)

	done := make(chan error, 1)
	go func() {
		_, err := sw.RunOnce(context.Background())
		done <- err
	}()

	<-runner.entered

	// Overlapping tick is skipped, not queued.
	_, err := sw.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrSweepRunning)

	close(runner.release)
	assert.NoError(t, <-done)

	// After the first run finishes the sweeper accepts work again.
	_, err = sw.RunOnce(context.Background())
	assert.NoError(t, err)
}
