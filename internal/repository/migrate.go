package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the repositories own.
// Used by cmd/seed, tests and (behind AUTO_MIGRATE) api startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&reviewModel{},
		&courseModel{},
		&serviceModel{},
		&appointmentModel{},
	)
}
