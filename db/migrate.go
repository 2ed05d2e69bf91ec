package db

import (
	"fmt"
	"log"

	"github.com/beautyplaza/beautyplaza-api/models"
)

// Migrate runs AutoMigrate over the full schema. Init must have been
// called first.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Technician{},
		&models.BeautyService{},
		&models.Appointment{},
		&models.LoyaltyPoint{},
		&models.GiftCard{},
		&models.Promotion{},
		&models.Referral{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
