package challenge

import (
	"testing"

	"tradesense/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buy(symbol string, quantity, price float64) models.Trade {
	return models.Trade{Symbol: symbol, Side: models.TradeSideBuy, Quantity: quantity, Price: price}
}

func sell(symbol string, quantity, price float64) models.Trade {
	return models.Trade{Symbol: symbol, Side: models.TradeSideSell, Quantity: quantity, Price: price}
}

func TestAggregateHoldingsSingleBuy(t *testing.T) {
	holdings := AggregateHoldings([]models.Trade{buy("AAPL", 10, 100)})

	require.Len(t, holdings, 1)
	h := holdings[0]
	assert.Equal(t, "AAPL", h.Symbol)
	assert.InDelta(t, 10, h.Quantity, 1e-9)
	assert.InDelta(t, 1000, h.TotalCost, 1e-9)
	assert.InDelta(t, 100, h.CurrentPrice, 1e-9)
	require.NotNil(t, h.AvgPrice)
	assert.InDelta(t, 100, *h.AvgPrice, 1e-9)
	assert.InDelta(t, 1000, h.MarketValue, 1e-9)
	assert.InDelta(t, 0, h.UnrealizedPnL, 1e-9)
}

func TestAggregateHoldingsSellKeepsCostBasis(t *testing.T) {
	holdings := AggregateHoldings([]models.Trade{
		buy("AAPL", 10, 100),
		sell("AAPL", 4, 120),
	})

	require.Len(t, holdings, 1)
	h := holdings[0]
	assert.InDelta(t, 6, h.Quantity, 1e-9)
	// Sells reduce quantity only; the accumulated cost stays
	assert.InDelta(t, 1000, h.TotalCost, 1e-9)
	assert.InDelta(t, 120, h.CurrentPrice, 1e-9)
	assert.InDelta(t, 720, h.MarketValue, 1e-9)
	assert.InDelta(t, -280, h.UnrealizedPnL, 1e-9)
	require.NotNil(t, h.UnrealizedPnLPct)
	assert.InDelta(t, -28, *h.UnrealizedPnLPct, 1e-9)
}

func TestAggregateHoldingsClosedPositionHidden(t *testing.T) {
	holdings := AggregateHoldings([]models.Trade{
		buy("BTC-USD", 2, 95000),
		sell("BTC-USD", 2, 96000),
	})

	assert.Empty(t, holdings)
}

func TestAggregateHoldingsShortNotVisible(t *testing.T) {
	holdings := AggregateHoldings([]models.Trade{
		buy("TSLA", 1, 175),
		sell("TSLA", 3, 180),
	})

	assert.Empty(t, holdings)
}

func TestAggregateHoldingsSortedBySymbol(t *testing.T) {
	holdings := AggregateHoldings([]models.Trade{
		buy("TSLA", 1, 175),
		buy("AAPL", 2, 185),
		buy("MSFT", 3, 415),
	})

	require.Len(t, holdings, 3)
	assert.Equal(t, "AAPL", holdings[0].Symbol)
	assert.Equal(t, "MSFT", holdings[1].Symbol)
	assert.Equal(t, "TSLA", holdings[2].Symbol)
}

func TestAggregateHoldingsZeroCostBasis(t *testing.T) {
	// A position with no accumulated cost has undefined ratios
	holdings := AggregateHoldings([]models.Trade{buy("IAM", 5, 0)})

	require.Len(t, holdings, 1)
	h := holdings[0]
	assert.Nil(t, h.AvgPrice)
	assert.Nil(t, h.UnrealizedPnLPct)
	assert.InDelta(t, 0, h.TotalCost, 1e-9)
}

func TestAggregateHoldingsInterleavedSymbols(t *testing.T) {
	holdings := AggregateHoldings([]models.Trade{
		buy("AAPL", 10, 100),
		buy("ETH-USD", 1, 2650),
		sell("AAPL", 4, 120),
		buy("AAPL", 2, 110),
	})

	require.Len(t, holdings, 2)

	aapl := holdings[0]
	assert.Equal(t, "AAPL", aapl.Symbol)
	assert.InDelta(t, 8, aapl.Quantity, 1e-9)
	assert.InDelta(t, 1220, aapl.TotalCost, 1e-9)
	assert.InDelta(t, 110, aapl.CurrentPrice, 1e-9)

	eth := holdings[1]
	assert.Equal(t, "ETH-USD", eth.Symbol)
	assert.InDelta(t, 1, eth.Quantity, 1e-9)
}

func TestRealizedOnSell(t *testing.T) {
	history := []models.Trade{buy("AAPL", 10, 100)}

	// Selling 4 above the 100 average realizes (120-100)*4
	assert.InDelta(t, 80, RealizedOnSell(history, "AAPL", 4, 120), 1e-9)

	// No position in the symbol means nothing to realize
	assert.InDelta(t, 0, RealizedOnSell(history, "TSLA", 1, 175), 1e-9)
}

func TestRealizedOnSellAveragedBasis(t *testing.T) {
	history := []models.Trade{
		buy("ETH-USD", 1, 2000),
		buy("ETH-USD", 1, 3000),
	}

	// Average cost is 2500; selling one at 2650 realizes 150
	assert.InDelta(t, 150, RealizedOnSell(history, "ETH-USD", 1, 2650), 1e-9)
}
