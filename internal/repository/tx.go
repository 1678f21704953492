package repository

import (
	"context"
	"errors"
	"time"

	"vehiclerental/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the view of the data layer visible inside one transaction. The
// booking lifecycle engine does all of its reads and paired writes through
// it, so a locked read and the write it guards can never end up in different
// transactions.
type Store interface {
	UserExists(ctx context.Context, id int64) (bool, error)
	VehicleForUpdate(ctx context.Context, id int64) (*domain.Vehicle, error)
	BookingForUpdate(ctx context.Context, id int64) (*domain.Booking, error)
	InsertBooking(ctx context.Context, b *domain.Booking) error
	SetBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	SetVehicleAvailability(ctx context.Context, id int64, status domain.AvailabilityStatus) error
	ExpiredActiveBookings(ctx context.Context, before time.Time) ([]domain.Booking, error)
}

// TxManager runs a function inside a database transaction with commit on nil
// and rollback on error or panic, on every exit path.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) Do(ctx context.Context, fn func(s Store) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txStore{tx: tx})
	})
}

type txStore struct {
	tx *gorm.DB
}

// forUpdate adds an exclusive row lock on postgres. SQLite has no row-level
// locks; its single-writer transactions give the same serialization.
func (s *txStore) forUpdate() *gorm.DB {
	if s.tx.Dialector.Name() == "postgres" {
		return s.tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return s.tx
}

func (s *txStore) UserExists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := s.tx.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Count(&cnt)
	return cnt > 0, tx.Error
}

func (s *txStore) VehicleForUpdate(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := s.forUpdate().WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (s *txStore) BookingForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := s.forUpdate().WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (s *txStore) InsertBooking(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := s.tx.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (s *txStore) SetBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := s.tx.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	return tx.Error
}

func (s *txStore) SetVehicleAvailability(ctx context.Context, id int64, status domain.AvailabilityStatus) error {
	tx := s.tx.WithContext(ctx).Model(&vehicleModel{}).Where("id = ?", id).
		Updates(map[string]any{"availability_status": string(status), "updated_at": time.Now()})
	return tx.Error
}

func (s *txStore) ExpiredActiveBookings(ctx context.Context, before time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := s.forUpdate().WithContext(ctx).
		Where("status = ? AND rent_end_date < ?", string(domain.BookingActive), before).
		Order("id").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
