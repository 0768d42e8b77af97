package challenge

import (
	"errors"
	"fmt"

	"tradesense/internal/models"
)

// ErrInvalidConfig marks a challenge configuration that must be rejected
// at creation time instead of silently divided by.
var ErrInvalidConfig = errors.New("invalid challenge configuration")

// Config holds the immutable risk parameters of a challenge account.
type Config struct {
	StartBalance      float64
	ProfitTargetPct   float64
	DailyLossLimitPct float64
	TotalLossLimitPct float64
}

// Validate rejects configurations whose denominators would be unusable.
func (c Config) Validate() error {
	if c.StartBalance <= 0 {
		return fmt.Errorf("%w: start balance must be positive, got %.2f", ErrInvalidConfig, c.StartBalance)
	}
	if c.ProfitTargetPct <= 0 {
		return fmt.Errorf("%w: profit target must be positive, got %.2f", ErrInvalidConfig, c.ProfitTargetPct)
	}
	if c.DailyLossLimitPct <= 0 {
		return fmt.Errorf("%w: daily loss limit must be positive, got %.2f", ErrInvalidConfig, c.DailyLossLimitPct)
	}
	if c.TotalLossLimitPct <= 0 {
		return fmt.Errorf("%w: total loss limit must be positive, got %.2f", ErrInvalidConfig, c.TotalLossLimitPct)
	}
	return nil
}

// ConfigFromChallenge extracts the engine config from a stored challenge.
func ConfigFromChallenge(c *models.Challenge) Config {
	return Config{
		StartBalance:      c.StartBalance,
		ProfitTargetPct:   c.ProfitTargetPct,
		DailyLossLimitPct: c.DailyLossLimitPct,
		TotalLossLimitPct: c.TotalLossLimitPct,
	}
}

// Input is everything one evaluation pass consumes. Trades must be in
// chronological execution order. DayStartEquity is optional; when nil the
// daily-loss rule is not evaluated.
type Input struct {
	Status         models.ChallengeStatus
	Config         Config
	CurrentEquity  float64
	DayStartEquity *float64
	Trades         []models.Trade
}

// Result is one deterministic evaluation of an account: holdings view,
// headline stats, rule meters, and the (possibly transitioned) status.
type Result struct {
	Status        models.ChallengeStatus `json:"status"`
	Reason        string                 `json:"reason,omitempty"`
	Holdings      []HoldingSummary       `json:"holdings"`
	CurrentEquity float64                `json:"current_equity"`
	StartBalance  float64                `json:"start_balance"`
	ProfitLossPct float64                `json:"profit_loss_pct"`
	ProfitLossAbs float64                `json:"profit_loss_abs"`
	TotalTrades   int                    `json:"total_trades"`
	WinRatePct    float64                `json:"win_rate_pct"`
	Meters        Meters                 `json:"meters"`
}

// LockedResult is the neutral evaluation reported when the user has no
// challenge at all. Every figure is zero; nothing is computed.
func LockedResult() *Result {
	return &Result{
		Status:   models.ChallengeStatusNone,
		Holdings: []HoldingSummary{},
	}
}

// Evaluate runs one pass over the account. It is pure: the same input
// always yields the same result, and re-evaluating after appending a
// trade is consistent with incrementally updating the previous result.
func Evaluate(in Input) (*Result, error) {
	if in.Status == models.ChallengeStatusNone {
		return LockedResult(), nil
	}

	if err := in.Config.Validate(); err != nil {
		return nil, err
	}

	pnlPct, pnlAbs := profitLoss(in.Config.StartBalance, in.CurrentEquity)
	status, reason := nextStatus(in, pnlPct)

	return &Result{
		Status:        status,
		Reason:        reason,
		Holdings:      AggregateHoldings(in.Trades),
		CurrentEquity: in.CurrentEquity,
		StartBalance:  in.Config.StartBalance,
		ProfitLossPct: pnlPct,
		ProfitLossAbs: pnlAbs,
		TotalTrades:   len(in.Trades),
		WinRatePct:    winRatePct(in.Trades),
		Meters:        computeMeters(in.Config, in.CurrentEquity, pnlPct, in.DayStartEquity),
	}, nil
}

// nextStatus applies the rule transitions. Loss checks run before the
// profit check: a breach voids a simultaneous profit achievement. All
// thresholds are inclusive. Terminal statuses never change.
func nextStatus(in Input, pnlPct float64) (models.ChallengeStatus, string) {
	if in.Status.IsTerminal() {
		return in.Status, ""
	}

	cfg := in.Config

	if in.DayStartEquity != nil {
		if dd, ok := dailyDrawdownPct(cfg, in.CurrentEquity, *in.DayStartEquity); ok && dd >= cfg.DailyLossLimitPct {
			return models.ChallengeStatusFailed,
				fmt.Sprintf("daily loss limit exceeded: -%.2f%% (limit %.2f%%)", dd, cfg.DailyLossLimitPct)
		}
	}

	if totalDrawdown := -pnlPct; totalDrawdown >= cfg.TotalLossLimitPct {
		return models.ChallengeStatusFailed,
			fmt.Sprintf("total loss limit exceeded: -%.2f%% (limit %.2f%%)", totalDrawdown, cfg.TotalLossLimitPct)
	}

	if pnlPct >= cfg.ProfitTargetPct {
		return models.ChallengeStatusPassed,
			fmt.Sprintf("profit target hit: +%.2f%% (target %.2f%%)", pnlPct, cfg.ProfitTargetPct)
	}

	return models.ChallengeStatusActive, ""
}
