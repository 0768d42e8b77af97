package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetersFlatAccount(t *testing.T) {
	m := computeMeters(defaultConfig(), 10000, 0, floatPtr(10000))

	assert.True(t, m.DailyLossTracked)
	assert.Zero(t, m.TotalLoss.CurrentPct)
	assert.Zero(t, m.TotalLoss.ProgressPct)
	assert.Zero(t, m.DailyLoss.CurrentPct)
	assert.Zero(t, m.ProfitTarget.CurrentPct)
	assert.InDelta(t, 10, m.TotalLoss.LimitPct, 1e-9)
	assert.InDelta(t, 5, m.DailyLoss.LimitPct, 1e-9)
	assert.InDelta(t, 10, m.ProfitTarget.LimitPct, 1e-9)
}

func TestComputeMetersDrawdownSide(t *testing.T) {
	// -4% overall, -2% on the day
	m := computeMeters(defaultConfig(), 9600, -4, floatPtr(9795.92))

	assert.InDelta(t, 4, m.TotalLoss.CurrentPct, 1e-9)
	assert.InDelta(t, 40, m.TotalLoss.ProgressPct, 1e-9)
	assert.InDelta(t, 2, m.DailyLoss.CurrentPct, 1e-2)
	assert.InDelta(t, 40, m.DailyLoss.ProgressPct, 1e-1)
	assert.Zero(t, m.ProfitTarget.CurrentPct)
	assert.Zero(t, m.ProfitTarget.ProgressPct)
}

func TestComputeMetersProfitSide(t *testing.T) {
	m := computeMeters(defaultConfig(), 10700, 7, floatPtr(10500))

	assert.InDelta(t, 7, m.ProfitTarget.CurrentPct, 1e-9)
	assert.InDelta(t, 70, m.ProfitTarget.ProgressPct, 1e-9)
	assert.Zero(t, m.TotalLoss.CurrentPct)
	// Up on the day, so the daily meter stays at zero
	assert.Zero(t, m.DailyLoss.CurrentPct)
	assert.Zero(t, m.DailyLoss.ProgressPct)
}

func TestComputeMetersProgressClamped(t *testing.T) {
	m := computeMeters(defaultConfig(), 7500, -25, floatPtr(10000))

	assert.InDelta(t, 25, m.TotalLoss.CurrentPct, 1e-9)
	assert.InDelta(t, 100, m.TotalLoss.ProgressPct, 1e-9)
	assert.InDelta(t, 100, m.DailyLoss.ProgressPct, 1e-9)
}

func TestComputeMetersNoDaySnapshot(t *testing.T) {
	m := computeMeters(defaultConfig(), 9600, -4, nil)

	assert.False(t, m.DailyLossTracked)
	assert.Zero(t, m.DailyLoss.CurrentPct)
	assert.Zero(t, m.DailyLoss.ProgressPct)
	assert.InDelta(t, 5, m.DailyLoss.LimitPct, 1e-9)
}

func TestDailyDrawdownPctFallsBackToStartBalance(t *testing.T) {
	dd, ok := dailyDrawdownPct(defaultConfig(), 9600, 0)

	assert.True(t, ok)
	assert.InDelta(t, 4, dd, 1e-9)
}

func TestDailyDrawdownPctNotEvaluable(t *testing.T) {
	cfg := defaultConfig()
	cfg.StartBalance = 0

	_, ok := dailyDrawdownPct(cfg, 9600, -50)
	assert.False(t, ok)
}

func TestClampPct(t *testing.T) {
	assert.Zero(t, clampPct(-3))
	assert.InDelta(t, 42.5, clampPct(42.5), 1e-9)
	assert.InDelta(t, 100, clampPct(180), 1e-9)
}
