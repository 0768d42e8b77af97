package models

import (
	"time"
)

// User is a minimal trader record. Authentication transport lives in an
// external service; this table exists for ownership and leaderboard
// display names.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
