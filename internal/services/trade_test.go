package services

import (
	"testing"

	"tradesense/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateTradeRequest(t *testing.T) {
	assert.NoError(t, validateTradeRequest("AAPL", models.TradeSideBuy, 10))
	assert.NoError(t, validateTradeRequest("BTC-USD", models.TradeSideSell, 0.5))

	assert.Error(t, validateTradeRequest("", models.TradeSideBuy, 10))
	assert.Error(t, validateTradeRequest("AAPL", models.TradeSide("hold"), 10))
	assert.Error(t, validateTradeRequest("AAPL", models.TradeSideBuy, 0))
	assert.Error(t, validateTradeRequest("AAPL", models.TradeSideSell, -3))
}
