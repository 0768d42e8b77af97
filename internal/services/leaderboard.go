package services

import (
	"fmt"

	"gorm.io/gorm"
)

// LeaderboardService produces the public monthly ranking
type LeaderboardService struct {
	db *gorm.DB
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{
		db: db,
	}
}

// LeaderboardEntry is one ranked trader
type LeaderboardEntry struct {
	Rank      int     `json:"rank" gorm:"-"`
	Name      string  `json:"name"`
	Equity    float64 `json:"equity" gorm:"column:current_equity"`
	ProfitPct float64 `json:"profit_pct" gorm:"column:profit_pct"`
}

// MonthlyTop10 ranks this month's active challenges by profit percentage.
// Start balances are validated positive at creation, so the division is safe.
func (s *LeaderboardService) MonthlyTop10() ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry

	err := s.db.Raw(`
		SELECT
		  u.name,
		  c.current_equity,
		  ((c.current_equity - c.start_balance) / c.start_balance * 100) AS profit_pct
		FROM challenges c
		JOIN users u ON c.user_id = u.id
		WHERE c.status = 'active'
		  AND date_trunc('month', c.created_at) = date_trunc('month', now())
		ORDER BY profit_pct DESC, c.current_equity DESC
		LIMIT 10
	`).Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
