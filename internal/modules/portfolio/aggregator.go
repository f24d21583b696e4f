// Package portfolio aggregates per-asset scores and holdings into the
// portfolio-wide health, allocation, concentration-risk and
// capital-efficiency analytics.
package portfolio

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/industry"
	"github.com/moreshwar/stocky/internal/modules/scoring"
)

// Concentration thresholds and penalties.
const (
	maxSectorWeight = 0.35
	maxAssetWeight  = 0.20
	maxTop3Weight   = 0.60
	top3Penalty     = 10
)

// Beta sensitivity thresholds.
const (
	betaDefensive  = 0.8
	betaAggressive = 1.2
)

// Aggregator computes portfolio analytics from a holdings snapshot, a
// live-price map and the asset records known to the caller.
type Aggregator struct {
	log zerolog.Logger
}

// NewAggregator creates a new portfolio aggregator
func NewAggregator(log zerolog.Logger) *Aggregator {
	return &Aggregator{
		log: log.With().Str("service", "portfolio_aggregator").Logger(),
	}
}

// assetStake is one holding's value and resolved score inside a single
// aggregation pass.
type assetStake struct {
	symbol string
	value  float64
	score  int
}

// Aggregate recomputes the full analytics from scratch. It is a single
// pass over the holdings snapshot and returns a fresh value; nothing is
// cached between calls. Holdings with zero or negative quantity are
// ignored. All divisions are guarded: an empty portfolio yields health 0,
// diversification 100 and sensitivity "Moderate".
func (a *Aggregator) Aggregate(
	holdings map[string]domain.Holding,
	livePrices map[string]float64,
	records map[string]*domain.AssetRecord,
) Analytics {
	analytics := Analytics{
		Allocation: map[string]float64{
			BucketEquity:      0,
			BucketCash:        0,
			BucketMutualFunds: 0,
			BucketETF:         0,
		},
		Risk: Risk{
			Alerts:               []string{},
			Sectors:              []SectorExposure{},
			DiversificationScore: 100,
			Sensitivity:          "Moderate",
		},
		Efficiency: []EfficiencyFlag{},
	}

	sectorExposure := make(map[string]float64)
	var stakes []assetStake

	// Parallel slices for the value-weighted means.
	var scoredTotals, scoredValues []float64
	var betas, betaValues []float64

	for _, sym := range sortedSymbols(holdings) {
		holding := holdings[sym]
		if holding.Quantity <= 0 {
			continue
		}

		value := holding.Quantity * livePrices[sym]
		analytics.TotalValue += value

		score := 0
		rec := records[sym]
		if rec != nil {
			analytics.Allocation[bucketFor(rec.Class)] += value

			sector := SectorDiversified
			if rec.Class == domain.AssetClassEquity {
				sector = industry.Detect(rec.Name, rec.Class).Name
				if rec.Beta != 0 {
					betas = append(betas, rec.Beta)
					betaValues = append(betaValues, value)
				}
			} else {
				// Coarse sector tilt for funds: the raw name is checked so
				// "IT" only matches explicit sector funds.
				if strings.Contains(rec.Name, "BANK") {
					sector = "BANKING"
				} else if strings.Contains(rec.Name, "IT") {
					sector = "IT"
				}
				betas = append(betas, 1.0)
				betaValues = append(betaValues, value)
			}
			sectorExposure[sector] += value

			cls := industry.Classify(rec)
			if raw := scoring.ScoreFundamentals(rec, cls); raw != nil {
				normalized := scoring.Normalize(*raw, rec, cls)
				if normalized.Total > 0 {
					score = normalized.Total
					scoredTotals = append(scoredTotals, float64(normalized.Total))
					scoredValues = append(scoredValues, value)
					analytics.ScoredValue += value
				}
			}
		} else {
			// Unknown asset: assume equity in an unknown sector.
			analytics.Allocation[BucketEquity] += value
			sectorExposure[industry.General] += value
		}

		stakes = append(stakes, assetStake{symbol: sym, value: value, score: score})
	}

	if analytics.ScoredValue > 0 {
		analytics.HealthScore = int(math.Round(stat.Mean(scoredTotals, scoredValues)))
	}

	if len(betaValues) > 0 {
		portfolioBeta := stat.Mean(betas, betaValues)
		switch {
		case portfolioBeta < betaDefensive:
			analytics.Risk.Sensitivity = "Defensive"
		case portfolioBeta > betaAggressive:
			analytics.Risk.Sensitivity = "Aggressive"
		default:
			analytics.Risk.Sensitivity = "Balanced"
		}
	}

	if analytics.TotalValue > 0 {
		a.analyzeConcentration(&analytics, sectorExposure, stakes, records)
	}

	a.log.Debug().
		Float64("total_value", analytics.TotalValue).
		Int("health_score", analytics.HealthScore).
		Int("diversification", analytics.Risk.DiversificationScore).
		Str("sensitivity", analytics.Risk.Sensitivity).
		Msg("Aggregated portfolio analytics")

	return analytics
}

// analyzeConcentration fills the risk block and the efficiency flags.
// Caller guarantees analytics.TotalValue > 0.
func (a *Aggregator) analyzeConcentration(
	analytics *Analytics,
	sectorExposure map[string]float64,
	stakes []assetStake,
	records map[string]*domain.AssetRecord,
) {
	totalValue := analytics.TotalValue
	penalty := 0.0

	sectors := make([]SectorExposure, 0, len(sectorExposure))
	for name, value := range sectorExposure {
		sectors = append(sectors, SectorExposure{Sector: name, Value: value})
	}
	sort.Slice(sectors, func(i, j int) bool {
		if sectors[i].Value != sectors[j].Value {
			return sectors[i].Value > sectors[j].Value
		}
		return sectors[i].Sector < sectors[j].Sector
	})

	top := len(sectors)
	if top > 3 {
		top = 3
	}
	analytics.Risk.Sectors = sectors[:top]

	for _, s := range sectors {
		pct := s.Value / totalValue
		if pct > maxSectorWeight && s.Sector != SectorDiversified && s.Sector != industry.General {
			analytics.Risk.Alerts = append(analytics.Risk.Alerts,
				fmt.Sprintf("High Exposure to %s (%d%%)", s.Sector, roundPct(pct)))
			penalty += (pct - maxSectorWeight) * 100
		}
	}

	sort.Slice(stakes, func(i, j int) bool {
		if stakes[i].value != stakes[j].value {
			return stakes[i].value > stakes[j].value
		}
		return stakes[i].symbol < stakes[j].symbol
	})

	for _, stake := range stakes {
		pct := stake.value / totalValue
		pct100 := pct * 100
		name := domain.DisplayName(stake.symbol, records[stake.symbol])

		if pct > maxAssetWeight {
			analytics.Risk.Alerts = append(analytics.Risk.Alerts,
				fmt.Sprintf("Dominant Asset: %s (%d%%)", name, roundPct(pct)))
			penalty += (pct - maxAssetWeight) * 100
		}

		if stake.score > 0 {
			switch {
			case stake.score < 50 && pct100 > 10:
				analytics.Efficiency = append(analytics.Efficiency,
					EfficiencyFlag{Kind: EfficiencyBad, Text: "High Allocation in Weak Asset: " + name})
			case stake.score > 70 && pct100 < 3:
				analytics.Efficiency = append(analytics.Efficiency,
					EfficiencyFlag{Kind: EfficiencyGood, Text: "Under-allocated Winner: " + name})
			case stake.score < 55 && pct100 < 2:
				analytics.Efficiency = append(analytics.Efficiency,
					EfficiencyFlag{Kind: EfficiencyTail, Text: "Low Conviction Tail: " + name})
			}
		}
	}

	if len(stakes) > 0 {
		top3Value := 0.0
		for i, stake := range stakes {
			if i >= 3 {
				break
			}
			top3Value += stake.value
		}
		if top3Pct := top3Value / totalValue; top3Pct > maxTop3Weight {
			analytics.Risk.Alerts = append(analytics.Risk.Alerts,
				fmt.Sprintf("Top 3 Assets constitute %d%% of Portfolio", roundPct(top3Pct)))
			penalty += top3Penalty
		}
	}

	score := int(math.Round(100 - penalty))
	if score < 0 {
		score = 0
	}
	analytics.Risk.DiversificationScore = score
}

func bucketFor(class domain.AssetClass) string {
	switch class {
	case domain.AssetClassETF:
		return BucketETF
	case domain.AssetClassFund:
		return BucketMutualFunds
	default:
		return BucketEquity
	}
}

func roundPct(pct float64) int {
	return int(math.Round(pct * 100))
}

func sortedSymbols(holdings map[string]domain.Holding) []string {
	symbols := make([]string, 0, len(holdings))
	for sym := range holdings {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}
