package challenge

import (
	"testing"

	"tradesense/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestProfitLoss(t *testing.T) {
	pct, abs := profitLoss(10000, 11200)
	assert.InDelta(t, 12, pct, 1e-9)
	assert.InDelta(t, 1200, abs, 1e-9)

	pct, abs = profitLoss(10000, 9250)
	assert.InDelta(t, -7.5, pct, 1e-9)
	assert.InDelta(t, -750, abs, 1e-9)

	pct, abs = profitLoss(10000, 10000)
	assert.Zero(t, pct)
	assert.Zero(t, abs)
}

func TestWinRatePctNoClosedFills(t *testing.T) {
	assert.Zero(t, winRatePct(nil))
	assert.Zero(t, winRatePct([]models.Trade{
		buy("AAPL", 10, 100),
		buy("TSLA", 2, 175),
	}))
}

func TestWinRatePctExplicitProfitLoss(t *testing.T) {
	trades := []models.Trade{
		{Symbol: "AAPL", Side: models.TradeSideSell, Quantity: 2, Price: 120, ProfitLoss: 40},
		{Symbol: "TSLA", Side: models.TradeSideSell, Quantity: 1, Price: 170, ProfitLoss: -5},
	}

	assert.InDelta(t, 50, winRatePct(trades), 1e-9)
}

func TestWinRatePctDerivedFromSells(t *testing.T) {
	trades := []models.Trade{
		buy("AAPL", 10, 100),
		sell("AAPL", 4, 120), // +80
		sell("AAPL", 4, 90),  // -40
	}

	assert.InDelta(t, 50, winRatePct(trades), 1e-9)
}

func TestWinRatePctMixedSources(t *testing.T) {
	trades := []models.Trade{
		buy("AAPL", 10, 100),
		sell("AAPL", 5, 110), // derived +50
		{Symbol: "ETH-USD", Side: models.TradeSideSell, Quantity: 1, Price: 2650, ProfitLoss: 150},
		{Symbol: "BTC-USD", Side: models.TradeSideSell, Quantity: 1, Price: 94000, ProfitLoss: -1050},
	}

	// Three closed fills, two winners
	assert.InDelta(t, 100.0*2/3, winRatePct(trades), 1e-9)
}
