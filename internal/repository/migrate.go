package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema, including the invariants enforced at the
// storage layer: unique email/phone/registration number, positive prices and
// end-after-start booking dates.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&vehicleModel{},
		&bookingModel{},
	)
}
