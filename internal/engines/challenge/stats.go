package challenge

import (
	"tradesense/internal/models"
)

// profitLoss returns the account-level P&L in percent and currency terms.
// Callers must have validated StartBalance > 0.
func profitLoss(startBalance, currentEquity float64) (pct, abs float64) {
	abs = currentEquity - startBalance
	if startBalance == 0 {
		return 0, abs
	}
	pct = abs / startBalance * 100
	return pct, abs
}

// winRatePct is the percentage of closed fills with positive realized
// P&L. A fill counts as closed when it carries an explicit realized P&L,
// or when it is a sell (whose P&L is then derived against the average
// cost basis at fill time). Accounts with no closed fills report zero.
func winRatePct(trades []models.Trade) float64 {
	derived := derivedRealizedPnL(trades)

	wins, decided := 0, 0
	for i, t := range trades {
		var pnl float64
		switch {
		case t.ProfitLoss != 0:
			pnl = t.ProfitLoss
		case t.Side == models.TradeSideSell:
			pnl = derived[i]
		default:
			// Open fill with nothing realized yet
			continue
		}

		decided++
		if pnl > 0 {
			wins++
		}
	}

	if decided == 0 {
		return 0
	}
	return float64(wins) / float64(decided) * 100
}
