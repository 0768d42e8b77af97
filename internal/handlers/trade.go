package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tradesense/internal/models"
	"tradesense/internal/services"

	"github.com/gin-gonic/gin"
)

// TradeHandler handles trade-related HTTP requests
type TradeHandler struct {
	tradeService     *services.TradeService
	challengeService *services.ChallengeService
}

// NewTradeHandler creates a new trade handler
func NewTradeHandler(tradeService *services.TradeService, challengeService *services.ChallengeService) *TradeHandler {
	return &TradeHandler{
		tradeService:     tradeService,
		challengeService: challengeService,
	}
}

// ExecuteTradeRequest is the POST /trades payload
type ExecuteTradeRequest struct {
	ChallengeID uint    `json:"challenge_id" binding:"required"`
	Symbol      string  `json:"symbol" binding:"required"`
	Side        string  `json:"side" binding:"required,oneof=buy sell"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
}

// ExecuteTrade handles HTTP requests to execute a fill
// @Summary Execute Trade
// @Description Execute a market fill against an active challenge and re-evaluate its rules
// @Tags trades
// @Accept json
// @Produce json
// @Param user_id query int false "User ID (default: 1)"
// @Param request body ExecuteTradeRequest true "Trade parameters"
// @Success 201 {object} map[string]interface{} "Executed trade with evaluation"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Challenge not found"
// @Router /trades [post]
func (th *TradeHandler) ExecuteTrade(c *gin.Context) {
	userID := userIDFromQuery(c)

	var req ExecuteTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trade, evaluation, err := th.tradeService.ExecuteTrade(c.Request.Context(), userID, req.ChallengeID, req.Symbol, models.TradeSide(req.Side), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrChallengeForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":          true,
		"trade":            trade,
		"challenge_status": evaluation.Status,
		"evaluation":       evaluation,
	})
}

// GetTrades handles HTTP requests to list a challenge's trades
// @Summary Get Challenge Trades
// @Description Get executed fills for a challenge, newest first
// @Tags trades
// @Produce json
// @Param challenge_id query int true "Challenge ID"
// @Param user_id query int false "User ID (default: 1)"
// @Param limit query int false "Number of trades to return (default: 50)" default(50) minimum(1) maximum(1000)
// @Success 200 {object} map[string]interface{} "List of trades"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Challenge not found"
// @Router /trades [get]
func (th *TradeHandler) GetTrades(c *gin.Context) {
	userID := userIDFromQuery(c)

	challengeIDStr := c.Query("challenge_id")
	if challengeIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "challenge_id parameter is required"})
		return
	}

	challengeID, err := strconv.ParseUint(challengeIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid challenge_id parameter"})
		return
	}

	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50
	}

	trades, err := th.challengeService.GetTrades(userID, uint(challengeID), limit)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrChallengeForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trades": trades,
		"count":  len(trades),
	})
}
