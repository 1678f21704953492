package repository

import (
	"context"
	"fmt"
	"testing"

	"vehiclerental/internal/database"
	"vehiclerental/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var repoDBCounter int

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named shared-cache memory DB so all pooled connections see one database.
	repoDBCounter++
	db, err := database.Connect(fmt.Sprintf("file:repo%d?mode=memory&cache=shared", repoDBCounter))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

// An admin rename racing a booking create must not write back the
// availability it read before the booking flipped it.
func TestVehicleRepository_Update_PreservesConcurrentAvailabilityFlip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	vehicles := NewVehicleRepository(db)
	txm := NewTxManager(db)

	v := &domain.Vehicle{
		Name:               "Toyota Corolla",
		Category:           domain.CategoryCar,
		RegistrationNumber: "REG-0001",
		DailyRentPrice:     50,
		AvailabilityStatus: domain.VehicleAvailable,
	}
	require.NoError(t, vehicles.Create(ctx, v))

	// Stale copy, read while the vehicle was still available.
	stale, err := vehicles.GetByID(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, domain.VehicleAvailable, stale.AvailabilityStatus)

	// A booking lands in between and books the vehicle.
	require.NoError(t, txm.Do(ctx, func(st Store) error {
		return st.SetVehicleAvailability(ctx, v.ID, domain.VehicleBooked)
	}))

	stale.Name = "Toyota Corolla 2024"
	require.NoError(t, vehicles.Update(ctx, stale))

	got, err := vehicles.GetByID(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, "Toyota Corolla 2024", got.Name)
	require.Equal(t, domain.VehicleBooked, got.AvailabilityStatus)

	// The updated copy handed back to the caller reflects the live row too.
	require.Equal(t, domain.VehicleBooked, stale.AvailabilityStatus)
}
