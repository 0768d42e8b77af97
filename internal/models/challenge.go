package models

import (
	"time"
)

type ChallengeStatus string

const (
	ChallengeStatusActive ChallengeStatus = "active"
	ChallengeStatusPassed ChallengeStatus = "passed"
	ChallengeStatusFailed ChallengeStatus = "failed"
	// ChallengeStatusNone is not persisted; it is the evaluation status
	// reported when a user has no challenge at all.
	ChallengeStatusNone ChallengeStatus = "none"
)

// IsTerminal reports whether the status can no longer change.
func (s ChallengeStatus) IsTerminal() bool {
	return s == ChallengeStatusPassed || s == ChallengeStatusFailed
}

// Challenge represents a funded-trading challenge account purchased from a plan
type Challenge struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"user_id" gorm:"index;not null;default:1"`
	PlanID        uint            `json:"plan_id" gorm:"index;not null"`
	StartBalance  float64         `json:"start_balance" gorm:"not null"`
	CurrentEquity float64         `json:"current_equity" gorm:"not null"`
	Status        ChallengeStatus `json:"status" gorm:"not null;default:'active';index"`
	FailureReason *string         `json:"failure_reason,omitempty"`

	// Risk-rule thresholds as positive percentages of StartBalance
	ProfitTargetPct   float64 `json:"profit_target_pct" gorm:"not null;default:10"`
	DailyLossLimitPct float64 `json:"daily_loss_limit_pct" gorm:"not null;default:5"`
	TotalLossLimitPct float64 `json:"total_loss_limit_pct" gorm:"not null;default:10"`

	PassedAt  *time.Time `json:"passed_at,omitempty"`
	FailedAt  *time.Time `json:"failed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Challenge) TableName() string {
	return "challenges"
}
