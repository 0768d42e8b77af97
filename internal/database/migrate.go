package database

import (
	"log"

	"tradesense/internal/models"
)

func AutoMigrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Plan{},
		&models.Challenge{},
		&models.Trade{},
		&models.DailyMetric{},
	)

	if err != nil {
		log.Printf("Failed to auto-migrate: %v", err)
		return err
	}

	log.Println("Database migration completed successfully")
	return nil
}
