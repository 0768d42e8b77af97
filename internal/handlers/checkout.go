package handlers

import (
	"net/http"

	"tradesense/internal/services"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles plan listing and the mock purchase flow
type CheckoutHandler struct {
	challengeService *services.ChallengeService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(challengeService *services.ChallengeService) *CheckoutHandler {
	return &CheckoutHandler{
		challengeService: challengeService,
	}
}

// MockCheckoutRequest is the POST /checkout/mock payload
type MockCheckoutRequest struct {
	PlanSlug string `json:"plan_slug" binding:"required"`
}

// MockCheckout handles HTTP requests to purchase a challenge
// @Summary Mock Checkout
// @Description Simulate a successful payment and create an active challenge for the plan
// @Tags checkout
// @Accept json
// @Produce json
// @Param user_id query int false "User ID (default: 1)"
// @Param request body MockCheckoutRequest true "Plan to purchase"
// @Success 201 {object} map[string]interface{} "Created challenge"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /checkout/mock [post]
func (ch *CheckoutHandler) MockCheckout(c *gin.Context) {
	userID := userIDFromQuery(c)

	var req MockCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := ch.challengeService.PurchaseChallenge(userID, req.PlanSlug)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Challenge created successfully",
		"challenge_id": record.ID,
	})
}

// GetPlans handles HTTP requests to list funding plans
// @Summary List Plans
// @Description Get the purchasable funding plans
// @Tags checkout
// @Produce json
// @Success 200 {object} map[string]interface{} "List of plans"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plans [get]
func (ch *CheckoutHandler) GetPlans(c *gin.Context) {
	plans, err := ch.challengeService.ListPlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plans": plans,
	})
}
