package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Admin{},
		&Donor{},
		&Campaign{},
		&Donation{},
		&Payment{},
		&Event{},
		&News{},
		&HowToHelp{},
		&Newsletter{},
		&PasswordResetToken{},
	)
}
