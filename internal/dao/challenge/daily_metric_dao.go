package challenge

import (
	"fmt"

	"tradesense/internal/models"

	"gorm.io/gorm"
)

// DailyMetricDAO handles database operations for daily metrics
type DailyMetricDAO struct {
	db *gorm.DB
}

// DailyMetricDAOInterface defines the contract for daily metric data access
type DailyMetricDAOInterface interface {
	GetForDate(challengeID uint, date string) (*models.DailyMetric, error)
	GetOrCreateForDateWithTx(tx *gorm.DB, challengeID uint, date string, dayStartEquity float64) (*models.DailyMetric, error)
	UpdateDayEndWithTx(tx *gorm.DB, metricID uint, dayEndEquity, dayPnL float64) error
}

// NewDailyMetricDAO creates a new daily metric DAO instance
func NewDailyMetricDAO(db *gorm.DB) DailyMetricDAOInterface {
	return &DailyMetricDAO{
		db: db,
	}
}

// GetForDate retrieves the metric row for one challenge and UTC date
func (dao *DailyMetricDAO) GetForDate(challengeID uint, date string) (*models.DailyMetric, error) {
	var metric models.DailyMetric
	err := dao.db.Where("challenge_id = ? AND date = ?", challengeID, date).First(&metric).Error
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

// GetOrCreateForDateWithTx returns the day's metric row, snapshotting the
// supplied equity as the day-start value when the row does not exist yet.
func (dao *DailyMetricDAO) GetOrCreateForDateWithTx(tx *gorm.DB, challengeID uint, date string, dayStartEquity float64) (*models.DailyMetric, error) {
	var metric models.DailyMetric
	err := tx.Where("challenge_id = ? AND date = ?", challengeID, date).First(&metric).Error

	if err == gorm.ErrRecordNotFound {
		metric = models.DailyMetric{
			ChallengeID:    challengeID,
			Date:           date,
			DayStartEquity: dayStartEquity,
		}
		if err := tx.Create(&metric).Error; err != nil {
			return nil, fmt.Errorf("failed to create daily metric: %w", err)
		}
		return &metric, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get daily metric: %w", err)
	}

	return &metric, nil
}

// UpdateDayEndWithTx records the day-end equity and P&L within a transaction
func (dao *DailyMetricDAO) UpdateDayEndWithTx(tx *gorm.DB, metricID uint, dayEndEquity, dayPnL float64) error {
	result := tx.Model(&models.DailyMetric{}).
		Where("id = ?", metricID).
		Updates(map[string]interface{}{
			"day_end_equity": dayEndEquity,
			"day_pnl":        dayPnL,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update daily metric: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("daily metric not found: %d", metricID)
	}
	return nil
}
