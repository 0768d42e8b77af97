package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tradesense/internal/services"

	"github.com/gin-gonic/gin"
)

// ChallengeHandler handles challenge-related HTTP requests
type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
	}
}

// GetActiveChallenge handles HTTP requests for the user's current challenge
// @Summary Get Active Challenge
// @Description Get the user's current challenge with recent trades and full rule evaluation. Users without a challenge get a null challenge and a locked evaluation.
// @Tags challenges
// @Produce json
// @Param user_id query int false "User ID (default: 1)"
// @Success 200 {object} map[string]interface{} "Challenge with evaluation"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /challenges/active [get]
func (ch *ChallengeHandler) GetActiveChallenge(c *gin.Context) {
	userID := userIDFromQuery(c)

	record, trades, evaluation, err := ch.challengeService.GetActiveChallenge(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"challenge":  record,
		"trades":     trades,
		"evaluation": evaluation,
	})
}

// GetChallengeDetail handles HTTP requests for one challenge with history
// @Summary Get Challenge Detail
// @Description Get a challenge by ID with its full trade history and rule evaluation
// @Tags challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Param user_id query int false "User ID (default: 1)"
// @Success 200 {object} map[string]interface{} "Challenge detail"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "Challenge not found"
// @Router /challenges/{id} [get]
func (ch *ChallengeHandler) GetChallengeDetail(c *gin.Context) {
	userID := userIDFromQuery(c)

	challengeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid challenge id"})
		return
	}

	record, trades, evaluation, err := ch.challengeService.GetChallengeDetail(userID, uint(challengeID))
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
		"challenge":  record,
		"trades":     trades,
		"evaluation": evaluation,
	})
}
