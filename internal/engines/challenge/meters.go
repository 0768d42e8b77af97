package challenge

// Meter reports progress toward one risk threshold. CurrentPct is the
// relevant drawdown or profit percentage (zero when the account is on the
// other side of flat), LimitPct the configured threshold, and ProgressPct
// how far along the bar is, clamped to [0, 100].
type Meter struct {
	CurrentPct  float64 `json:"current_pct"`
	LimitPct    float64 `json:"limit_pct"`
	ProgressPct float64 `json:"progress_pct"`
}

// Meters bundles the three rule meters shown on the dashboard.
// DailyLossTracked is false when no day-start equity was supplied, in
// which case the daily meter is reported zeroed rather than guessed.
type Meters struct {
	TotalLoss        Meter `json:"total_loss"`
	DailyLoss        Meter `json:"daily_loss"`
	ProfitTarget     Meter `json:"profit_target"`
	DailyLossTracked bool  `json:"daily_loss_tracked"`
}

func computeMeters(cfg Config, currentEquity, pnlPct float64, dayStartEquity *float64) Meters {
	m := Meters{
		TotalLoss:    Meter{LimitPct: cfg.TotalLossLimitPct},
		DailyLoss:    Meter{LimitPct: cfg.DailyLossLimitPct},
		ProfitTarget: Meter{LimitPct: cfg.ProfitTargetPct},
	}

	if pnlPct < 0 {
		m.TotalLoss.CurrentPct = -pnlPct
		m.TotalLoss.ProgressPct = clampPct(-pnlPct / cfg.TotalLossLimitPct * 100)
	}

	if pnlPct > 0 {
		m.ProfitTarget.CurrentPct = pnlPct
		m.ProfitTarget.ProgressPct = clampPct(pnlPct / cfg.ProfitTargetPct * 100)
	}

	if dayStartEquity != nil {
		if dd, ok := dailyDrawdownPct(cfg, currentEquity, *dayStartEquity); ok {
			m.DailyLossTracked = true
			if dd > 0 {
				m.DailyLoss.CurrentPct = dd
				m.DailyLoss.ProgressPct = clampPct(dd / cfg.DailyLossLimitPct * 100)
			}
		}
	}

	return m
}

// dailyDrawdownPct returns the within-day drawdown as a positive
// percentage of the day-start equity. A non-positive day-start snapshot is
// a data anomaly; the start balance is substituted as denominator, and if
// that is unusable too the rule is reported as not evaluable.
func dailyDrawdownPct(cfg Config, currentEquity, dayStartEquity float64) (float64, bool) {
	base := dayStartEquity
	if base <= 0 {
		base = cfg.StartBalance
	}
	if base <= 0 {
		return 0, false
	}
	return (base - currentEquity) / base * 100, true
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
