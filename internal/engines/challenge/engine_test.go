package challenge

import (
	"testing"

	"tradesense/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() Config {
	return Config{
		StartBalance:      10000,
		ProfitTargetPct:   10,
		DailyLossLimitPct: 5,
		TotalLossLimitPct: 10,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestEvaluateNoChallenge(t *testing.T) {
	result, err := Evaluate(Input{Status: models.ChallengeStatusNone})

	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusNone, result.Status)
	assert.Empty(t, result.Reason)
	assert.NotNil(t, result.Holdings)
	assert.Empty(t, result.Holdings)
	assert.Zero(t, result.CurrentEquity)
	assert.Zero(t, result.ProfitLossPct)
	assert.Zero(t, result.WinRatePct)
	assert.False(t, result.Meters.DailyLossTracked)
}

func TestEvaluateInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero start balance", Config{StartBalance: 0, ProfitTargetPct: 10, DailyLossLimitPct: 5, TotalLossLimitPct: 10}},
		{"negative start balance", Config{StartBalance: -100, ProfitTargetPct: 10, DailyLossLimitPct: 5, TotalLossLimitPct: 10}},
		{"zero profit target", Config{StartBalance: 10000, ProfitTargetPct: 0, DailyLossLimitPct: 5, TotalLossLimitPct: 10}},
		{"zero daily loss limit", Config{StartBalance: 10000, ProfitTargetPct: 10, DailyLossLimitPct: 0, TotalLossLimitPct: 10}},
		{"zero total loss limit", Config{StartBalance: 10000, ProfitTargetPct: 10, DailyLossLimitPct: 5, TotalLossLimitPct: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(Input{
				Status:        models.ChallengeStatusActive,
				Config:        tc.cfg,
				CurrentEquity: 10000,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestEvaluateProfitLossFigures(t *testing.T) {
	result, err := Evaluate(Input{
		Status:        models.ChallengeStatusActive,
		Config:        defaultConfig(),
		CurrentEquity: 11200,
	})

	require.NoError(t, err)
	assert.InDelta(t, 12.00, result.ProfitLossPct, 1e-9)
	assert.InDelta(t, 1200, result.ProfitLossAbs, 1e-9)
	assert.InDelta(t, 11200, result.CurrentEquity, 1e-9)
	assert.InDelta(t, 10000, result.StartBalance, 1e-9)
}

func TestEvaluatePassOnProfitTarget(t *testing.T) {
	result, err := Evaluate(Input{
		Status:        models.ChallengeStatusActive,
		Config:        defaultConfig(),
		CurrentEquity: 11050,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusPassed, result.Status)
	assert.Contains(t, result.Reason, "profit target hit")
}

func TestEvaluatePassInclusiveBoundary(t *testing.T) {
	// Exactly +10.00% against a 10% target passes
	result, err := Evaluate(Input{
		Status:        models.ChallengeStatusActive,
		Config:        defaultConfig(),
		CurrentEquity: 11000,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusPassed, result.Status)
}

func TestEvaluateFailOnTotalLoss(t *testing.T) {
	result, err := Evaluate(Input{
		Status:        models.ChallengeStatusActive,
		Config:        defaultConfig(),
		CurrentEquity: 8900,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusFailed, result.Status)
	assert.Contains(t, result.Reason, "total loss limit exceeded")
}

func TestEvaluateFailInclusiveBoundary(t *testing.T) {
	// Exactly -10.00% against a 10% limit fails
	result, err := Evaluate(Input{
		Status:        models.ChallengeStatusActive,
		Config:        defaultConfig(),
		CurrentEquity: 9000,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusFailed, result.Status)
}

func TestEvaluateFailOnDailyLoss(t *testing.T) {
	// Down 4% overall but 5.5% within the day
	result, err := Evaluate(Input{
		Status:         models.ChallengeStatusActive,
		Config:         defaultConfig(),
		CurrentEquity:  9600,
		DayStartEquity: floatPtr(10158.73),
	})

	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusFailed, result.Status)
	assert.Contains(t, result.Reason, "daily loss limit exceeded")
}

func TestEvaluateDailyLossBeatsProfitTarget(t *testing.T) {
	// Above the profit target but down over 5% since the day started:
	// the breach wins
	result, err := Evaluate(Input{
		Status:         models.ChallengeStatusActive,
		Config:         defaultConfig(),
		CurrentEquity:  11000,
		DayStartEquity: floatPtr(11600),
	})

	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusFailed, result.Status)
	assert.Contains(t, result.Reason, "daily loss limit exceeded")
}

func TestEvaluateDailyLossNotEvaluatedWithoutSnapshot(t *testing.T) {
	result, err := Evaluate(Input{
		Status:        models.ChallengeStatusActive,
		Config:        defaultConfig(),
		CurrentEquity: 9600,
	})

	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusActive, result.Status)
	assert.False(t, result.Meters.DailyLossTracked)
}

func TestEvaluateTerminalStatusSticky(t *testing.T) {
	for _, status := range []models.ChallengeStatus{models.ChallengeStatusPassed, models.ChallengeStatusFailed} {
		result, err := Evaluate(Input{
			Status:        status,
			Config:        defaultConfig(),
			CurrentEquity: 9600,
		})

		require.NoError(t, err)
		assert.Equal(t, status, result.Status)
		assert.Empty(t, result.Reason)
	}
}

func TestEvaluateActiveMidRange(t *testing.T) {
	result, err := Evaluate(Input{
		Status:         models.ChallengeStatusActive,
		Config:         defaultConfig(),
		CurrentEquity:  10300,
		DayStartEquity: floatPtr(10250),
	})

	require.NoError(t, err)
	assert.Equal(t, models.ChallengeStatusActive, result.Status)
	assert.Empty(t, result.Reason)
	assert.True(t, result.Meters.DailyLossTracked)
}

func TestEvaluateDeterministic(t *testing.T) {
	in := Input{
		Status:         models.ChallengeStatusActive,
		Config:         defaultConfig(),
		CurrentEquity:  10450,
		DayStartEquity: floatPtr(10400),
		Trades: []models.Trade{
			buy("AAPL", 10, 100),
			buy("ETH-USD", 1, 2650),
			sell("AAPL", 4, 120),
		},
	}

	first, err := Evaluate(in)
	require.NoError(t, err)
	second, err := Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluateCountsAllTrades(t *testing.T) {
	result, err := Evaluate(Input{
		Status:        models.ChallengeStatusActive,
		Config:        defaultConfig(),
		CurrentEquity: 10000,
		Trades: []models.Trade{
			buy("AAPL", 10, 100),
			sell("AAPL", 10, 110),
			buy("TSLA", 2, 175),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalTrades)
	// One closed fill, profitable
	assert.InDelta(t, 100, result.WinRatePct, 1e-9)
}

func TestConfigFromChallenge(t *testing.T) {
	record := &models.Challenge{
		StartBalance:      25000,
		ProfitTargetPct:   10,
		DailyLossLimitPct: 5,
		TotalLossLimitPct: 10,
	}

	cfg := ConfigFromChallenge(record)
	assert.InDelta(t, 25000, cfg.StartBalance, 1e-9)
	require.NoError(t, cfg.Validate())
}
