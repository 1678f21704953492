package booking

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"

	"github.com/google/uuid"
)

// Sweeper auto-returns bookings whose rental window has elapsed without a
// manual return. It acts as a privileged system actor: the same transition
// as an admin return, minus the requester check.
type Sweeper struct {
	txm      TxRunner
	interval time.Duration
	now      func() time.Time
	running  atomic.Bool
}

func NewSweeper(txm TxRunner, interval time.Duration) *Sweeper {
	return &Sweeper{
		txm:      txm,
		interval: interval,
		now:      time.Now,
	}
}

// Start launches the sweep loop: one run immediately, then one per interval
// until ctx is cancelled. Failures are logged and left for the next tick.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		s.sweep(ctx)

		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Sweeper) sweep(ctx context.Context) {
	runID := uuid.NewString()

	n, err := s.RunOnce(ctx)
	switch {
	case err == ErrSweepRunning:
		log.Printf("auto-return sweep %s: previous run still in flight, skipping", runID)
	case err != nil:
		// Best effort: the whole run rolled back and the next tick retries.
		log.Printf("auto-return sweep %s failed: %v", runID, err)
	case n > 0:
		log.Printf("auto-return sweep %s: returned %d overdue booking(s)", runID, n)
	}
}

// RunOnce performs a single sweep in one transaction and reports how many
// bookings it returned. Runs are single-flight; an overlapping call gets
// ErrSweepRunning.
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	if !s.running.CompareAndSwap(false, true) {
		return 0, ErrSweepRunning
	}
	defer s.running.Store(false)

	// Overdue means the end date is before today, compared date-only: a
	// booking ending today is not swept until tomorrow.
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	count := 0
	err := s.txm.Do(ctx, func(st repository.Store) error {
		expired, err := st.ExpiredActiveBookings(ctx, today)
		if err != nil {
			return err
		}

		for _, b := range expired {
			if err := st.SetBookingStatus(ctx, b.ID, domain.BookingReturned); err != nil {
				return err
			}
			if err := st.SetVehicleAvailability(ctx, b.VehicleID, domain.VehicleAvailable); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
