package models

import (
	"time"
)

type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// Trade represents an executed fill attached to a challenge.
// Fills are append-only; insertion order is chronological execution order.
type Trade struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ChallengeID uint      `json:"challenge_id" gorm:"not null;index"`
	Symbol      string    `json:"symbol" gorm:"not null;index"`
	Side        TradeSide `json:"side" gorm:"not null"`
	Quantity    float64   `json:"quantity" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	TotalValue  float64   `json:"total_value" gorm:"not null"`
	// ProfitLoss is the realized P&L of this individual fill (net of
	// commission). Zero when the fill realized nothing.
	ProfitLoss float64   `json:"profit_loss" gorm:"default:0"`
	ExecutedAt time.Time `json:"executed_at" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Challenge Challenge `json:"-" gorm:"foreignKey:ChallengeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Trade) TableName() string {
	return "trades"
}
