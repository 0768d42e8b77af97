package challenge

import (
	"sort"

	"tradesense/internal/models"
)

// Holding is the net exposure in one symbol, aggregated from fills.
// Cost basis is deliberately simplified: sells reduce quantity but never
// the accumulated cost, and the current price is always the price of the
// last fill seen for the symbol. This mirrors the dashboard's net-holdings
// view, not a lot-tracking system.
type Holding struct {
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	TotalCost    float64 `json:"total_cost"`
	CurrentPrice float64 `json:"current_price"`
}

// HoldingSummary is a Holding plus figures derived on demand. AvgPrice and
// UnrealizedPnLPct are null when the cost basis is zero, since the ratios
// are undefined for such a position.
type HoldingSummary struct {
	Holding
	AvgPrice         *float64 `json:"avg_price"`
	MarketValue      float64  `json:"market_value"`
	UnrealizedPnL    float64  `json:"unrealized_pnl"`
	UnrealizedPnLPct *float64 `json:"unrealized_pnl_pct"`
}

// AggregateHoldings folds an ordered fill sequence into per-symbol
// holdings. Only holdings with positive net quantity are visible. Output
// is sorted by symbol so repeated evaluations are identical.
func AggregateHoldings(trades []models.Trade) []HoldingSummary {
	book := make(map[string]*Holding)

	for _, t := range trades {
		h, ok := book[t.Symbol]
		if !ok {
			h = &Holding{Symbol: t.Symbol, CurrentPrice: t.Price}
			book[t.Symbol] = h
		}

		if t.Side == models.TradeSideBuy {
			h.Quantity += t.Quantity
			h.TotalCost += t.Quantity * t.Price
		} else {
			h.Quantity -= t.Quantity
		}

		// Last fill price stands in for the market price
		h.CurrentPrice = t.Price
	}

	summaries := make([]HoldingSummary, 0, len(book))
	for _, h := range book {
		if h.Quantity <= 0 {
			continue
		}
		summaries = append(summaries, summarizeHolding(*h))
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Symbol < summaries[j].Symbol
	})

	return summaries
}

func summarizeHolding(h Holding) HoldingSummary {
	s := HoldingSummary{Holding: h}
	s.MarketValue = h.Quantity * h.CurrentPrice
	s.UnrealizedPnL = s.MarketValue - h.TotalCost

	if h.TotalCost != 0 {
		avg := h.TotalCost / h.Quantity
		pct := s.UnrealizedPnL / h.TotalCost * 100
		s.AvgPrice = &avg
		s.UnrealizedPnLPct = &pct
	}

	return s
}

// RealizedOnSell returns the realized P&L, gross of commission, that a
// sell of quantity at price would produce against the book built from the
// fill history so far. Zero when there is no usable cost basis to match
// against.
func RealizedOnSell(history []models.Trade, symbol string, quantity, price float64) float64 {
	candidate := make([]models.Trade, 0, len(history)+1)
	candidate = append(candidate, history...)
	candidate = append(candidate, models.Trade{
		Symbol:   symbol,
		Side:     models.TradeSideSell,
		Quantity: quantity,
		Price:    price,
	})

	realized := derivedRealizedPnL(candidate)
	return realized[len(realized)-1]
}

// derivedRealizedPnL returns, per fill, the realized P&L implied by
// matching each sell against the average cost of the position just before
// it, using the same simplified book AggregateHoldings keeps. Buys and
// sells with no usable cost basis yield zero.
func derivedRealizedPnL(trades []models.Trade) []float64 {
	type bookEntry struct {
		quantity  float64
		totalCost float64
	}

	book := make(map[string]*bookEntry)
	realized := make([]float64, len(trades))

	for i, t := range trades {
		e, ok := book[t.Symbol]
		if !ok {
			e = &bookEntry{}
			book[t.Symbol] = e
		}

		if t.Side == models.TradeSideBuy {
			e.quantity += t.Quantity
			e.totalCost += t.Quantity * t.Price
			continue
		}

		if e.quantity > 0 && e.totalCost > 0 {
			avg := e.totalCost / e.quantity
			realized[i] = (t.Price - avg) * t.Quantity
		}
		e.quantity -= t.Quantity
	}

	return realized
}
