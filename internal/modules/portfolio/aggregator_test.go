package portfolio

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/moreshwar/stocky/internal/domain"
)

func newTestAggregator() *Aggregator {
	return NewAggregator(zerolog.Nop())
}

func TestAggregate_EmptyPortfolio(t *testing.T) {
	analytics := newTestAggregator().Aggregate(nil, nil, nil)

	assert.Equal(t, 0.0, analytics.TotalValue)
	assert.Equal(t, 0, analytics.HealthScore)
	assert.Equal(t, 100, analytics.Risk.DiversificationScore)
	assert.Equal(t, "Moderate", analytics.Risk.Sensitivity)
	assert.Empty(t, analytics.Risk.Alerts)
	assert.Contains(t, analytics.Allocation, BucketCash)
}

func TestAggregate_SectorConcentration(t *testing.T) {
	holdings := map[string]domain.Holding{
		"TCS":   {Quantity: 70},
		"OTHER": {Quantity: 30},
	}
	prices := map[string]float64{"TCS": 1, "OTHER": 1}
	records := map[string]*domain.AssetRecord{
		"TCS":   {Symbol: "TCS", Name: "TCS Ltd", Class: domain.AssetClassEquity, Price: 1, ROE: 40, ROCE: 50, OPM: 25},
		"OTHER": {Symbol: "OTHER", Name: "Plain Widgets Ltd", Class: domain.AssetClassEquity, Price: 1, ROE: 15, ROCE: 15, OPM: 12},
	}

	analytics := newTestAggregator().Aggregate(holdings, prices, records)

	assert.Equal(t, 100.0, analytics.TotalValue)
	assert.Contains(t, analytics.Risk.Alerts, "High Exposure to IT (70%)")
	// Sector overweight alone contributes 35 points of penalty; the
	// dominant-asset and top-3 breaches stack on top.
	assert.LessOrEqual(t, analytics.Risk.DiversificationScore, 65)
}

func TestAggregate_DominantAssetAlert(t *testing.T) {
	holdings := map[string]domain.Holding{
		"BIG":   {Quantity: 30},
		"SMALL": {Quantity: 70},
	}
	prices := map[string]float64{"BIG": 1, "SMALL": 0.5}
	records := map[string]*domain.AssetRecord{
		"BIG":   {Symbol: "BIG", Name: "Big Widgets Ltd", Class: domain.AssetClassEquity, Price: 1},
		"SMALL": {Symbol: "SMALL", Name: "Small Widgets Ltd", Class: domain.AssetClassEquity, Price: 0.5},
	}

	analytics := newTestAggregator().Aggregate(holdings, prices, records)

	// BIG is 30/65 = 46% of the book.
	assert.Contains(t, analytics.Risk.Alerts, "Dominant Asset: Big Widgets Ltd (46%)")
}

func TestAggregate_WellDiversifiedScoresFull(t *testing.T) {
	names := []string{"HDFC Bank", "Infosys Ltd", "Nestle India", "Cipla Ltd", "Maruti Suzuki", "NTPC Ltd"}
	holdings := map[string]domain.Holding{}
	prices := map[string]float64{}
	records := map[string]*domain.AssetRecord{}
	for i, name := range names {
		sym := fmt.Sprintf("S%d", i)
		holdings[sym] = domain.Holding{Quantity: 1}
		prices[sym] = 10
		records[sym] = &domain.AssetRecord{Symbol: sym, Name: name, Class: domain.AssetClassEquity, Price: 10}
	}

	analytics := newTestAggregator().Aggregate(holdings, prices, records)

	// Six equal positions in six sectors: nothing breaches a threshold.
	assert.Equal(t, 100, analytics.Risk.DiversificationScore)
	assert.Empty(t, analytics.Risk.Alerts)
	assert.Len(t, analytics.Risk.Sectors, 3)
}

func TestAggregate_AllocationBuckets(t *testing.T) {
	holdings := map[string]domain.Holding{
		"EQ":  {Quantity: 1},
		"MF":  {Quantity: 1},
		"ETF": {Quantity: 1},
	}
	prices := map[string]float64{"EQ": 100, "MF": 50, "ETF": 25}
	records := map[string]*domain.AssetRecord{
		"EQ":  {Symbol: "EQ", Name: "Equity Ltd", Class: domain.AssetClassEquity, Price: 100},
		"MF":  {Symbol: "MF", Name: "Some Fund", Class: domain.AssetClassFund, Price: 50},
		"ETF": {Symbol: "ETF", Name: "Some ETF", Class: domain.AssetClassETF, Price: 25},
	}

	analytics := newTestAggregator().Aggregate(holdings, prices, records)

	assert.Equal(t, 100.0, analytics.Allocation[BucketEquity])
	assert.Equal(t, 50.0, analytics.Allocation[BucketMutualFunds])
	assert.Equal(t, 25.0, analytics.Allocation[BucketETF])
	assert.Equal(t, 175.0, analytics.TotalValue)
}

func TestAggregate_UnknownRecordTreatedAsEquity(t *testing.T) {
	holdings := map[string]domain.Holding{"MYSTERY": {Quantity: 2}}
	prices := map[string]float64{"MYSTERY": 50}

	analytics := newTestAggregator().Aggregate(holdings, prices, nil)

	assert.Equal(t, 100.0, analytics.TotalValue)
	assert.Equal(t, 100.0, analytics.Allocation[BucketEquity])
	// Unknown assets cannot be scored, so the book has no health reading.
	assert.Equal(t, 0, analytics.HealthScore)
	assert.Equal(t, 0.0, analytics.ScoredValue)
}

func TestAggregate_NegativeQuantityIgnored(t *testing.T) {
	holdings := map[string]domain.Holding{
		"GOOD": {Quantity: 1},
		"BAD":  {Quantity: -5},
	}
	prices := map[string]float64{"GOOD": 100, "BAD": 100}
	records := map[string]*domain.AssetRecord{
		"GOOD": {Symbol: "GOOD", Name: "Good Ltd", Class: domain.AssetClassEquity, Price: 100},
		"BAD":  {Symbol: "BAD", Name: "Bad Ltd", Class: domain.AssetClassEquity, Price: 100},
	}

	analytics := newTestAggregator().Aggregate(holdings, prices, records)
	assert.Equal(t, 100.0, analytics.TotalValue)
}

func TestAggregate_BetaSensitivity(t *testing.T) {
	defensive := map[string]*domain.AssetRecord{
		"A": {Symbol: "A", Name: "Defensive Ltd", Class: domain.AssetClassEquity, Price: 10, Beta: 0.5},
	}
	analytics := newTestAggregator().Aggregate(
		map[string]domain.Holding{"A": {Quantity: 1}},
		map[string]float64{"A": 10},
		defensive,
	)
	assert.Equal(t, "Defensive", analytics.Risk.Sensitivity)

	aggressive := map[string]*domain.AssetRecord{
		"B": {Symbol: "B", Name: "Aggressive Ltd", Class: domain.AssetClassEquity, Price: 10, Beta: 1.8},
	}
	analytics = newTestAggregator().Aggregate(
		map[string]domain.Holding{"B": {Quantity: 1}},
		map[string]float64{"B": 10},
		aggressive,
	)
	assert.Equal(t, "Aggressive", analytics.Risk.Sensitivity)

	// Funds are pinned at market beta.
	funds := map[string]*domain.AssetRecord{
		"F": {Symbol: "F", Name: "Index Fund", Class: domain.AssetClassFund, Price: 10},
	}
	analytics = newTestAggregator().Aggregate(
		map[string]domain.Holding{"F": {Quantity: 1}},
		map[string]float64{"F": 10},
		funds,
	)
	assert.Equal(t, "Balanced", analytics.Risk.Sensitivity)
}

func TestAggregate_FundSectorTilt(t *testing.T) {
	records := map[string]*domain.AssetRecord{
		"BANKFUND": {Symbol: "BANKFUND", Name: "Super BANK Fund", Class: domain.AssetClassFund, Price: 10},
		"PLAIN":    {Symbol: "PLAIN", Name: "Balanced Fund", Class: domain.AssetClassFund, Price: 10},
	}
	analytics := newTestAggregator().Aggregate(
		map[string]domain.Holding{"BANKFUND": {Quantity: 1}, "PLAIN": {Quantity: 1}},
		map[string]float64{"BANKFUND": 10, "PLAIN": 10},
		records,
	)

	sectors := map[string]float64{}
	for _, s := range analytics.Risk.Sectors {
		sectors[s.Sector] = s.Value
	}
	assert.Contains(t, sectors, "BANKING")
	assert.Contains(t, sectors, SectorDiversified)
}

func TestAggregate_HealthScoreIsValueWeighted(t *testing.T) {
	// Two funds with identical return profiles score identically, so the
	// weighted health equals that score regardless of position sizes.
	rec := func(sym string) *domain.AssetRecord {
		return &domain.AssetRecord{
			Symbol: sym, Name: "Fund " + sym, Class: domain.AssetClassFund, Price: 10,
			Returns: &domain.TrailingReturns{R1Y: 18, R3Y: 14, R5Y: 11},
		}
	}
	records := map[string]*domain.AssetRecord{"A": rec("A"), "B": rec("B")}
	analytics := newTestAggregator().Aggregate(
		map[string]domain.Holding{"A": {Quantity: 3}, "B": {Quantity: 1}},
		map[string]float64{"A": 10, "B": 10},
		records,
	)

	assert.Equal(t, 99, analytics.HealthScore)
	assert.Equal(t, 40.0, analytics.ScoredValue)
}
