package models

import (
	"time"
)

// Plan represents a purchasable funding plan. Buying a plan creates an
// active challenge seeded with the plan's start balance.
type Plan struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Slug         string    `json:"slug" gorm:"not null;uniqueIndex"`
	Name         string    `json:"name" gorm:"not null"`
	Price        float64   `json:"price" gorm:"not null"`
	StartBalance float64   `json:"start_balance" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Plan) TableName() string {
	return "plans"
}
