package challenge

import (
	"fmt"

	"tradesense/internal/models"

	"gorm.io/gorm"
)

// PlanDAO handles database operations for funding plans
type PlanDAO struct {
	db *gorm.DB
}

// PlanDAOInterface defines the contract for plan data access
type PlanDAOInterface interface {
	GetBySlug(slug string) (*models.Plan, error)
	List() ([]models.Plan, error)
}

// NewPlanDAO creates a new plan DAO instance
func NewPlanDAO(db *gorm.DB) PlanDAOInterface {
	return &PlanDAO{
		db: db,
	}
}

// GetBySlug retrieves a plan by its slug
func (dao *PlanDAO) GetBySlug(slug string) (*models.Plan, error) {
	var plan models.Plan
	if err := dao.db.Where("slug = ?", slug).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// List returns all plans ordered by start balance
func (dao *PlanDAO) List() ([]models.Plan, error) {
	var plans []models.Plan
	if err := dao.db.Order("start_balance ASC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}
