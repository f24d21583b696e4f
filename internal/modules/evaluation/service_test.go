package evaluation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/industry"
	"github.com/moreshwar/stocky/internal/modules/scoring"
	"github.com/moreshwar/stocky/internal/modules/signals"
)

func newTestService() *Service {
	return New(zerolog.Nop())
}

func TestEvaluateAsset_NonPositivePriceIsUnscoreable(t *testing.T) {
	rec := &domain.AssetRecord{
		Symbol: "ZERO", Name: "Zero Price Ltd", Class: domain.AssetClassEquity,
		ROE: 20, SalesGrowth: 10, ProfitGrowth: 12,
	}
	report := newTestService().EvaluateAsset(rec, false)

	assert.False(t, report.Scoreable)
	assert.Nil(t, report.Fundamental)
	assert.Nil(t, report.Decision)
	assert.Nil(t, report.Levels)
	assert.Empty(t, report.Narrative)

	// Classification, timing and confidence are still available.
	assert.NotEmpty(t, report.Timing)
	assert.NotEmpty(t, report.Confidence)
	assert.NotEmpty(t, report.Industry)
}

func TestEvaluateAsset_UnscoreableFundHasNoVerdict(t *testing.T) {
	rec := &domain.AssetRecord{
		Symbol: "NODATA", Name: "No Data ETF", Class: domain.AssetClassETF,
		Source: domain.SourceTechnicalOnly, Price: 100,
	}
	report := newTestService().EvaluateAsset(rec, false)

	assert.False(t, report.Scoreable)
	assert.Nil(t, report.Decision)
}

func TestEvaluateAsset_Equity(t *testing.T) {
	rec := &domain.AssetRecord{
		Symbol: "EXFIN", Name: "Example Finance Ltd", Class: domain.AssetClassEquity,
		Price: 500, ROE: 25, ROCE: 22, OPM: 18,
		SalesGrowth: 12, ProfitGrowth: 14, PE: 18, MarketCap: 15000, Beta: 0.9,
		Returns: &domain.TrailingReturns{R1Y: 20, R3Y: 12, R5Y: 14},
	}
	report := newTestService().EvaluateAsset(rec, true)

	require.True(t, report.Scoreable)
	require.NotNil(t, report.Fundamental)
	require.NotNil(t, report.Porter)
	require.NotNil(t, report.Decision)
	require.NotNil(t, report.Levels)
	assert.True(t, report.Held)
	assert.Equal(t, "BANKING", report.Industry)
	assert.True(t, report.FinancialLike)
	assert.NotEmpty(t, report.Narrative)

	// The composite is the normalized total plus both bonuses, clamped.
	cls := industry.Classify(rec)
	raw := scoring.ScoreFundamentals(rec, cls)
	require.NotNil(t, raw)
	normalized := scoring.Normalize(*raw, rec, cls)
	boosted := normalized.Total + report.TrajectoryBonus + report.RelativeStrength
	assert.Equal(t, scoring.ClampTotal(boosted), report.Composite)

	// Conviction fuses the boosted composite with the moat total.
	assert.Equal(t, signals.CalculateConviction(report.Composite, report.Porter), report.Conviction)

	// Held equity gets target and stop, not entry.
	assert.NotNil(t, report.Levels.Target)
	assert.NotNil(t, report.Levels.StopLoss)
	assert.Nil(t, report.Levels.Entry)
}

func TestEvaluateAsset_FundUsesSquashAndNoPorter(t *testing.T) {
	rec := &domain.AssetRecord{
		Symbol: "GRWF", Name: "Growth Fund", Class: domain.AssetClassFund,
		Price:   120,
		Returns: &domain.TrailingReturns{R1Y: 18, R3Y: 14, R5Y: 11},
	}
	report := newTestService().EvaluateAsset(rec, false)

	require.True(t, report.Scoreable)
	assert.Nil(t, report.Porter)
	assert.Empty(t, report.Trajectory)
	assert.Empty(t, report.FundamentalTiming)
	assert.Zero(t, report.TrajectoryBonus)
	assert.Zero(t, report.RelativeStrength)

	// Normalized total 99 with no bonuses squashes to 60+round(39*(1-e^-1.365)).
	assert.Equal(t, scoring.Squash(99), report.Composite)
	assert.LessOrEqual(t, report.Composite, 99)

	// Unheld fund gets an entry level.
	require.NotNil(t, report.Levels)
	assert.NotNil(t, report.Levels.Entry)
}

func TestEvaluateBatch_SortsAndMarksHeld(t *testing.T) {
	records := []domain.AssetRecord{
		{Symbol: "ZETA", Name: "Zeta Fund", Class: domain.AssetClassFund, Price: 50, Returns: &domain.TrailingReturns{R1Y: 12, R3Y: 10, R5Y: 9}},
		{Symbol: "ALPHA", Name: "Alpha Fund", Class: domain.AssetClassFund, Price: 80, Returns: &domain.TrailingReturns{R1Y: 12, R3Y: 10, R5Y: 9}},
	}
	holdings := map[string]domain.Holding{
		"ALPHA": {Quantity: 10},
		"ZETA":  {Quantity: 0},
	}

	reports := newTestService().EvaluateBatch(records, holdings)
	require.Len(t, reports, 2)

	assert.Equal(t, "ALPHA", reports[0].Symbol)
	assert.Equal(t, "ZETA", reports[1].Symbol)
	assert.True(t, reports[0].Held)
	// Zero quantity does not count as held.
	assert.False(t, reports[1].Held)
}
