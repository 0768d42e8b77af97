package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// userIDFromQuery resolves the acting user. Authentication transport is
// handled upstream; until then the default demo user is assumed.
func userIDFromQuery(c *gin.Context) uint {
	userIDStr := c.DefaultQuery("user_id", "1")
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil || userID == 0 {
		return 1
	}
	return uint(userID)
}
