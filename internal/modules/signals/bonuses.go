package signals

import (
	"math"

	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/industry"
)

// Class-specific medians for the relative-strength comparison. Financial
// businesses are judged on ROE and profit growth; everything else on ROCE,
// profit growth and operating margin.
const (
	medianEfficiencyFinancial = 13.0
	medianEfficiencyDefault   = 15.0
	medianGrowthFinancial     = 12.0
	medianGrowthDefault       = 10.0
	medianMarginDefault       = 14.0
)

// CalculateTrajectoryBonus is the additive 0-20 bonus rewarding sustained,
// broad-based momentum. Equities only.
func CalculateTrajectoryBonus(rec *domain.AssetRecord) int {
	if rec.Class != domain.AssetClassEquity {
		return 0
	}
	sales := rec.SalesGrowth
	profit := rec.ProfitGrowth
	r3y := rec.Ret3Y()
	r5y := rec.Ret5Y()

	bonus := 0
	if sales > 10 && profit > 10 {
		bonus += 5
	}
	if profit > sales && sales > 0 {
		bonus += 5
	}
	if rec.ROE > 15 && rec.ROCE > 15 {
		bonus += 5
	}
	if r3y > 12 && r5y > 12 {
		bonus += 5
	}
	return bonus
}

// CalculateRelativeStrength scores an equity against class-specific medians
// with ±20% bands, producing a bonus in [-10, 10]. Equities only.
func CalculateRelativeStrength(rec *domain.AssetRecord, cls industry.Classification) int {
	if rec.Class != domain.AssetClassEquity {
		return 0
	}

	medianEfficiency := medianEfficiencyDefault
	medianGrowth := medianGrowthDefault
	if cls.FinancialLike {
		medianEfficiency = medianEfficiencyFinancial
		medianGrowth = medianGrowthFinancial
	}

	efficiency := rec.ROCE
	if cls.FinancialLike {
		efficiency = rec.ROE
	}

	score := 0
	switch {
	case efficiency > medianEfficiency*1.2:
		score += 5
	case efficiency > medianEfficiency:
		score += 2
	case efficiency < medianEfficiency*0.8:
		score -= 5
	default:
		score -= 2
	}

	if cls.FinancialLike {
		switch {
		case rec.ProfitGrowth > medianGrowth*1.2:
			score += 5
		case rec.ProfitGrowth > medianGrowth:
			score += 2
		case rec.ProfitGrowth < medianGrowth*0.8:
			score -= 5
		default:
			score -= 2
		}
	} else {
		sub := 0.0
		if rec.ProfitGrowth > medianGrowth {
			sub += 2.5
		} else {
			sub -= 2.5
		}
		if rec.OPM > medianMarginDefault {
			sub += 2.5
		} else {
			sub -= 2.5
		}
		score += int(math.Round(sub))
	}

	if score > 10 {
		return 10
	}
	if score < -10 {
		return -10
	}
	return score
}
