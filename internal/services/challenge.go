package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	dao "tradesense/internal/dao/challenge"
	"tradesense/internal/engines/challenge"
	"tradesense/internal/models"

	"gorm.io/gorm"
)

const recentTradesLimit = 10

var (
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrChallengeForbidden = errors.New("challenge belongs to another user")
)

// ChallengeService manages challenge lifecycle and evaluation reads
type ChallengeService struct {
	challengeDAO   dao.ChallengeDAOInterface
	tradeDAO       dao.TradeDAOInterface
	dailyMetricDAO dao.DailyMetricDAOInterface
	planDAO        dao.PlanDAOInterface
}

// NewChallengeService creates a new challenge service
func NewChallengeService(challengeDAO dao.ChallengeDAOInterface, tradeDAO dao.TradeDAOInterface, dailyMetricDAO dao.DailyMetricDAOInterface, planDAO dao.PlanDAOInterface) *ChallengeService {
	return &ChallengeService{
		challengeDAO:   challengeDAO,
		tradeDAO:       tradeDAO,
		dailyMetricDAO: dailyMetricDAO,
		planDAO:        planDAO,
	}
}

// PurchaseChallenge simulates a successful checkout: it creates an active
// challenge seeded with the plan's start balance. The resulting
// configuration is validated by the evaluation engine before anything is
// persisted.
func (s *ChallengeService) PurchaseChallenge(userID uint, planSlug string) (*models.Challenge, error) {
	plan, err := s.planDAO.GetBySlug(planSlug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("invalid plan: %s", planSlug)
		}
		return nil, fmt.Errorf("failed to look up plan: %w", err)
	}

	record := &models.Challenge{
		UserID:            userID,
		PlanID:            plan.ID,
		StartBalance:      plan.StartBalance,
		CurrentEquity:     plan.StartBalance,
		Status:            models.ChallengeStatusActive,
		ProfitTargetPct:   10,
		DailyLossLimitPct: 5,
		TotalLossLimitPct: 10,
	}

	if err := challenge.ConfigFromChallenge(record).Validate(); err != nil {
		return nil, err
	}

	if err := s.challengeDAO.Create(record); err != nil {
		return nil, err
	}

	log.Printf("Created challenge %d for user %d: plan=%s, start_balance=%.2f",
		record.ID, userID, plan.Slug, plan.StartBalance)

	return record, nil
}

// GetActiveChallenge returns the user's current challenge with its recent
// trades and a full evaluation. Users without any challenge get a nil
// challenge and the locked evaluation.
func (s *ChallengeService) GetActiveChallenge(userID uint) (*models.Challenge, []models.Trade, *challenge.Result, error) {
	record, err := s.challengeDAO.GetActiveByUser(userID)
	if err == gorm.ErrRecordNotFound {
		record, err = s.challengeDAO.GetLatestByUser(userID)
	}
	if err == gorm.ErrRecordNotFound {
		return nil, nil, challenge.LockedResult(), nil
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	recent, err := s.tradeDAO.GetChallengeTrades(record.ID, recentTradesLimit)
	if err != nil {
		return nil, nil, nil, err
	}

	result, err := s.Evaluate(record)
	if err != nil {
		return nil, nil, nil, err
	}

	return record, recent, result, nil
}

// GetChallengeDetail returns one challenge with full trade history and
// evaluation, enforcing ownership.
func (s *ChallengeService) GetChallengeDetail(userID, challengeID uint) (*models.Challenge, []models.Trade, *challenge.Result, error) {
	record, err := s.challengeDAO.GetByID(challengeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, nil, ErrChallengeNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	if record.UserID != userID {
		return nil, nil, nil, ErrChallengeForbidden
	}

	trades, err := s.tradeDAO.GetChallengeTrades(record.ID, 0)
	if err != nil {
		return nil, nil, nil, err
	}

	result, err := s.Evaluate(record)
	if err != nil {
		return nil, nil, nil, err
	}

	return record, trades, result, nil
}

// GetTrades returns a challenge's fill history, newest first, enforcing
// ownership.
func (s *ChallengeService) GetTrades(userID, challengeID uint, limit int) ([]models.Trade, error) {
	record, err := s.challengeDAO.GetByID(challengeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	if record.UserID != userID {
		return nil, ErrChallengeForbidden
	}

	return s.tradeDAO.GetChallengeTrades(challengeID, limit)
}

// ListPlans returns the purchasable funding plans
func (s *ChallengeService) ListPlans() ([]models.Plan, error) {
	return s.planDAO.List()
}

// Evaluate runs the evaluation engine over the challenge's full fill
// history and today's day-start equity snapshot.
func (s *ChallengeService) Evaluate(record *models.Challenge) (*challenge.Result, error) {
	trades, err := s.tradeDAO.GetChallengeTradesChronological(record.ID)
	if err != nil {
		return nil, err
	}

	input := challenge.Input{
		Status:        record.Status,
		Config:        challenge.ConfigFromChallenge(record),
		CurrentEquity: record.CurrentEquity,
		Trades:        trades,
	}

	today := time.Now().UTC().Format(models.MetricDateLayout)
	metric, err := s.dailyMetricDAO.GetForDate(record.ID, today)
	switch {
	case err == nil:
		input.DayStartEquity = &metric.DayStartEquity
	case err == gorm.ErrRecordNotFound:
		// No trading yet today: the day effectively starts at the
		// current equity, so the daily drawdown is zero.
		input.DayStartEquity = &record.CurrentEquity
	default:
		return nil, fmt.Errorf("failed to get daily metric: %w", err)
	}

	return challenge.Evaluate(input)
}
