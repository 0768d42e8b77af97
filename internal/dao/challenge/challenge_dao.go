package challenge

import (
	"fmt"
	"time"

	"tradesense/internal/models"

	"gorm.io/gorm"
)

// ChallengeDAO handles database operations for challenges
type ChallengeDAO struct {
	db *gorm.DB
}

// ChallengeDAOInterface defines the contract for challenge data access
type ChallengeDAOInterface interface {
	Create(challenge *models.Challenge) error
	GetByID(challengeID uint) (*models.Challenge, error)
	GetActiveByUser(userID uint) (*models.Challenge, error)
	GetLatestByUser(userID uint) (*models.Challenge, error)
	UpdateEquityWithTx(tx *gorm.DB, challengeID uint, equity float64) error
	MarkPassedWithTx(tx *gorm.DB, challengeID uint, at time.Time) error
	MarkFailedWithTx(tx *gorm.DB, challengeID uint, reason string, at time.Time) error
}

// NewChallengeDAO creates a new challenge DAO instance
func NewChallengeDAO(db *gorm.DB) ChallengeDAOInterface {
	return &ChallengeDAO{
		db: db,
	}
}

// Create creates a new challenge record
func (dao *ChallengeDAO) Create(challenge *models.Challenge) error {
	if err := dao.db.Create(challenge).Error; err != nil {
		return fmt.Errorf("failed to create challenge: %w", err)
	}
	return nil
}

// GetByID retrieves a challenge by ID
func (dao *ChallengeDAO) GetByID(challengeID uint) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := dao.db.First(&challenge, challengeID).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

// GetActiveByUser gets the most recent active challenge for a user
func (dao *ChallengeDAO) GetActiveByUser(userID uint) (*models.Challenge, error) {
	var challenge models.Challenge
	err := dao.db.Where("user_id = ? AND status = ?", userID, models.ChallengeStatusActive).
		Order("created_at DESC").
		First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// GetLatestByUser gets the most recent challenge for a user regardless of status
func (dao *ChallengeDAO) GetLatestByUser(userID uint) (*models.Challenge, error) {
	var challenge models.Challenge
	err := dao.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// UpdateEquityWithTx updates the current equity within a transaction
func (dao *ChallengeDAO) UpdateEquityWithTx(tx *gorm.DB, challengeID uint, equity float64) error {
	result := tx.Model(&models.Challenge{}).
		Where("id = ?", challengeID).
		Update("current_equity", equity)

	if result.Error != nil {
		return fmt.Errorf("failed to update challenge equity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("challenge not found: %d", challengeID)
	}
	return nil
}

// MarkPassedWithTx records the terminal passed transition within a transaction
func (dao *ChallengeDAO) MarkPassedWithTx(tx *gorm.DB, challengeID uint, at time.Time) error {
	result := tx.Model(&models.Challenge{}).
		Where("id = ? AND status = ?", challengeID, models.ChallengeStatusActive).
		Updates(map[string]interface{}{
			"status":    models.ChallengeStatusPassed,
			"passed_at": at,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark challenge passed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("challenge %d is not active", challengeID)
	}
	return nil
}

// MarkFailedWithTx records the terminal failed transition within a transaction
func (dao *ChallengeDAO) MarkFailedWithTx(tx *gorm.DB, challengeID uint, reason string, at time.Time) error {
	result := tx.Model(&models.Challenge{}).
		Where("id = ? AND status = ?", challengeID, models.ChallengeStatusActive).
		Updates(map[string]interface{}{
			"status":         models.ChallengeStatusFailed,
			"failure_reason": reason,
			"failed_at":      at,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark challenge failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("challenge %d is not active", challengeID)
	}
	return nil
}
