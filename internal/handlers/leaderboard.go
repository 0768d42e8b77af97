package handlers

import (
	"net/http"

	"tradesense/internal/services"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetMonthlyTop10 handles HTTP requests for the monthly ranking
// @Summary Monthly Top 10
// @Description Get this month's top 10 active challenges ranked by profit percentage
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Ranked traders"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /leaderboard/monthly-top10 [get]
func (lh *LeaderboardHandler) GetMonthlyTop10(c *gin.Context) {
	traders, err := lh.leaderboardService.MonthlyTop10()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"traders": traders,
	})
}
