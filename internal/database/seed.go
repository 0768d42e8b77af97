package database

import (
	"log"

	"tradesense/internal/models"
)

// defaultPlans are created on first boot so the checkout flow has
// something to sell. Prices are in the account base currency.
var defaultPlans = []models.Plan{
	{Slug: "starter", Name: "Starter", Price: 199, StartBalance: 10000},
	{Slug: "pro", Name: "Pro", Price: 399, StartBalance: 25000},
	{Slug: "elite", Name: "Elite", Price: 799, StartBalance: 100000},
}

// Seed inserts the default plans and a demo user when the tables are
// empty. Safe to call on every boot.
func Seed() error {
	var planCount int64
	if err := DB.Model(&models.Plan{}).Count(&planCount).Error; err != nil {
		return err
	}

	if planCount == 0 {
		if err := DB.Create(&defaultPlans).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d default plans", len(defaultPlans))
	}

	var userCount int64
	if err := DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount == 0 {
		demo := models.User{Name: "Demo Trader", Email: "demo@tradesense.local"}
		if err := DB.Create(&demo).Error; err != nil {
			return err
		}
		log.Printf("Seeded demo user %d", demo.ID)
	}

	return nil
}
