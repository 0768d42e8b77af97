package models

import (
	"time"
)

// MetricDateLayout is the canonical YYYY-MM-DD format of DailyMetric.Date.
const MetricDateLayout = "2006-01-02"

// DailyMetric tracks per-day equity for a challenge. One row per UTC
// calendar day; DayStartEquity is snapshotted at the first evaluation of
// the day and feeds the daily-loss rule.
type DailyMetric struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ChallengeID    uint      `json:"challenge_id" gorm:"not null;uniqueIndex:idx_challenge_date"`
	Date           string    `json:"date" gorm:"not null;uniqueIndex:idx_challenge_date"` // YYYY-MM-DD (UTC)
	DayStartEquity float64   `json:"day_start_equity" gorm:"not null"`
	DayEndEquity   *float64  `json:"day_end_equity,omitempty"`
	DayPnL         *float64  `json:"day_pnl,omitempty" gorm:"column:day_pnl"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (DailyMetric) TableName() string {
	return "daily_metrics"
}
