package services

import (
	"context"
	"fmt"
	"log"
	"time"

	dao "tradesense/internal/dao/challenge"
	"tradesense/internal/engines/challenge"
	"tradesense/internal/interfaces"
	"tradesense/internal/models"
	"tradesense/internal/services/market"
	"tradesense/internal/types"

	"gorm.io/gorm"
)

const (
	// DefaultCommissionRate is charged on every fill's notional value
	DefaultCommissionRate = 0.001 // 0.1% flat rate
)

// TradeService executes fills against a challenge and re-evaluates the
// rules after each one.
type TradeService struct {
	challengeDAO   dao.ChallengeDAOInterface
	tradeDAO       dao.TradeDAOInterface
	dailyMetricDAO dao.DailyMetricDAOInterface
	quoteService   market.QuoteServiceInterface
	hub            interfaces.WebSocketHub
	db             *gorm.DB
}

// NewTradeService creates a new trade service
func NewTradeService(challengeDAO dao.ChallengeDAOInterface, tradeDAO dao.TradeDAOInterface, dailyMetricDAO dao.DailyMetricDAOInterface, quoteService market.QuoteServiceInterface, hub interfaces.WebSocketHub, db *gorm.DB) *TradeService {
	return &TradeService{
		challengeDAO:   challengeDAO,
		tradeDAO:       tradeDAO,
		dailyMetricDAO: dailyMetricDAO,
		quoteService:   quoteService,
		hub:            hub,
		db:             db,
	}
}

// ExecuteTrade quotes the symbol, records the fill, applies its realized
// P&L to equity, rolls the daily metric, and re-evaluates the challenge
// rules. A terminal transition is persisted in the same transaction as
// the fill.
func (s *TradeService) ExecuteTrade(ctx context.Context, userID, challengeID uint, symbol string, side models.TradeSide, quantity float64) (*models.Trade, *challenge.Result, error) {
	if err := validateTradeRequest(symbol, side, quantity); err != nil {
		return nil, nil, err
	}

	record, err := s.challengeDAO.GetByID(challengeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, ErrChallengeNotFound
		}
		return nil, nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	if record.UserID != userID {
		return nil, nil, ErrChallengeForbidden
	}

	if record.Status != models.ChallengeStatusActive {
		return nil, nil, fmt.Errorf("challenge is %s, cannot trade", record.Status)
	}

	price, err := s.quoteService.GetQuote(ctx, symbol)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to quote %s: %w", symbol, err)
	}

	history, err := s.tradeDAO.GetChallengeTradesChronological(challengeID)
	if err != nil {
		return nil, nil, err
	}

	totalValue := quantity * price
	commission := totalValue * DefaultCommissionRate

	// Equity moves only by what the fill realizes: commission on buys,
	// matched P&L minus commission on sells.
	realized := -commission
	if side == models.TradeSideSell {
		realized += challenge.RealizedOnSell(history, symbol, quantity, price)
	}

	executedAt := time.Now().UTC()
	trade := &models.Trade{
		ChallengeID: challengeID,
		Symbol:      symbol,
		Side:        side,
		Quantity:    quantity,
		Price:       price,
		TotalValue:  totalValue,
		ProfitLoss:  realized,
		ExecutedAt:  executedAt,
	}

	newEquity := record.CurrentEquity + realized

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := s.tradeDAO.CreateWithTx(tx, trade); err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	if err := s.challengeDAO.UpdateEquityWithTx(tx, challengeID, newEquity); err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	// First fill of the day snapshots the pre-fill equity as day start
	metric, err := s.dailyMetricDAO.GetOrCreateForDateWithTx(tx, challengeID, executedAt.Format(models.MetricDateLayout), record.CurrentEquity)
	if err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	if err := s.dailyMetricDAO.UpdateDayEndWithTx(tx, metric.ID, newEquity, newEquity-metric.DayStartEquity); err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	result, err := challenge.Evaluate(challenge.Input{
		Status:         record.Status,
		Config:         challenge.ConfigFromChallenge(record),
		CurrentEquity:  newEquity,
		DayStartEquity: &metric.DayStartEquity,
		Trades:         append(history, *trade),
	})
	if err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	switch result.Status {
	case models.ChallengeStatusFailed:
		if err := s.challengeDAO.MarkFailedWithTx(tx, challengeID, result.Reason, executedAt); err != nil {
			tx.Rollback()
			return nil, nil, err
		}
	case models.ChallengeStatusPassed:
		if err := s.challengeDAO.MarkPassedWithTx(tx, challengeID, executedAt); err != nil {
			tx.Rollback()
			return nil, nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Executed trade %d: %s %s %.4f at %.4f, realized %.4f, equity %.2f, status %s",
		trade.ID, string(side), symbol, quantity, price, realized, newEquity, result.Status)

	s.broadcastTrade(trade, result)

	return trade, result, nil
}

func (s *TradeService) broadcastTrade(trade *models.Trade, result *challenge.Result) {
	if s.hub == nil {
		return
	}

	s.hub.BroadcastMessageString(string(types.TradeExecuted), map[string]interface{}{
		"trade":      trade,
		"evaluation": result,
	})

	if result.Status.IsTerminal() {
		s.hub.BroadcastMessageString(string(types.ChallengeStatusChanged), map[string]interface{}{
			"challenge_id": trade.ChallengeID,
			"status":       result.Status,
			"reason":       result.Reason,
		})
	}
}

// validateTradeRequest validates fill parameters
func validateTradeRequest(symbol string, side models.TradeSide, quantity float64) error {
	if symbol == "" {
		return fmt.Errorf("symbol cannot be empty")
	}

	if side != models.TradeSideBuy && side != models.TradeSideSell {
		return fmt.Errorf("invalid trade side: %s", side)
	}

	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %f", quantity)
	}

	return nil
}
