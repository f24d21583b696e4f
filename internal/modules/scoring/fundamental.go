// Package scoring implements the deterministic multi-factor quality scores:
// the fundamental score with industry normalization, the five-forces moat
// score, and the diminishing-returns squash applied to boosted fund totals.
package scoring

import (
	"math"

	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/industry"
)

// ScoreFundamentals computes the raw 0-99 fundamental score for a record.
//
// Funds and ETFs are scored on trailing returns when usable, falling back to
// position within the 52-week range. A fund-like record with neither usable
// returns nor a positive 52-week high is unscoreable and yields nil; callers
// must treat that as "no verdict available" rather than a zero score.
//
// Equities are scored on tier ladders over growth, efficiency, valuation and
// size, with financial-like businesses judged on ROE instead of margins.
func ScoreFundamentals(rec *domain.AssetRecord, cls industry.Classification) *FundamentalScore {
	if rec.Class.IsFundLike() {
		return scoreFundLike(rec)
	}
	return scoreEquity(rec, cls)
}

func scoreFundLike(rec *domain.AssetRecord) *FundamentalScore {
	ret1y := rec.Ret1Y()
	ret3y := rec.Ret3Y()
	ret5y := rec.Ret5Y()
	price := rec.Price

	high52 := price
	low52 := 0.0
	if rec.Technicals != nil {
		if rec.Technicals.High52 != 0 {
			high52 = rec.Technicals.High52
		}
		low52 = rec.Technicals.Low52
	}

	// Mutual funds always score on returns. ETFs do too, unless the record
	// came from the technical-only provider or has no 1y return at all.
	if rec.Class == domain.AssetClassFund || (rec.Source != domain.SourceTechnicalOnly && ret1y != 0) {
		total := 0
		switch {
		case ret1y > 15:
			total += 40
		case ret1y > 10:
			total += 30
		case ret1y > 0:
			total += 15
		}
		switch {
		case ret3y > 12:
			total += 30
		case ret3y > 8:
			total += 20
		case ret3y > 0:
			total += 10
		}
		switch {
		case ret5y > 10:
			total += 30
		case ret5y > 8:
			total += 20
		case ret5y > 0:
			total += 10
		}

		score := &FundamentalScore{
			Total:       minInt(99, total),
			Business:    minInt(40, round(float64(total)*0.4)),
			Moat:        minInt(20, round(float64(total)*0.3)),
			Management:  minInt(20, round(float64(total)*0.2)),
			Explanation: "Based on Returns",
		}
		if ret1y > ret3y {
			score.Risk = 20
		} else {
			score.Risk = 10
		}
		return score
	}

	if high52 > 0 {
		if low52 == 0 {
			low52 = high52 * 0.7
		}
		position := 0.0
		if r := high52 - low52; r > 0 {
			position = (price - low52) / r * 100
		}
		total := minInt(99, round(20+position*0.7))
		return &FundamentalScore{
			Total:       total,
			Business:    round(float64(total) * 0.4),
			Moat:        round(float64(total) * 0.2),
			Management:  round(float64(total) * 0.2),
			Risk:        round(float64(total) * 0.2),
			Explanation: "Trend Strength",
		}
	}

	// Insufficient data to score.
	return nil
}

func scoreEquity(rec *domain.AssetRecord, cls industry.Classification) *FundamentalScore {
	roe := rec.ROE
	roce := rec.ROCE
	salesGrowth := rec.SalesGrowth
	profitGrowth := rec.ProfitGrowth
	opm := rec.OPM
	pe := rec.PE
	mcap := rec.MarketCap
	beta := rec.Beta
	if beta == 0 {
		beta = 1.0
	}
	ret1y := rec.Ret1Y()

	score := &FundamentalScore{}

	// Business: sales growth tier + profit growth tier + efficiency tier.
	switch {
	case salesGrowth > 15:
		score.Business += 15
	case salesGrowth > 8:
		score.Business += 10
	case salesGrowth > 0:
		score.Business += 5
	case salesGrowth > -10:
		score.Business += 2
		score.Reasons = append(score.Reasons, ReasonSalesDrag)
	}

	switch {
	case profitGrowth > 15:
		score.Business += 15
	case profitGrowth > 8:
		score.Business += 10
	case profitGrowth > 0:
		score.Business += 5
	case profitGrowth > -20:
		score.Business += 2
		score.Reasons = append(score.Reasons, ReasonProfitDrag)
	}

	if cls.FinancialLike {
		switch {
		case roe > 15:
			score.Business += 10
		case roe > 10:
			score.Business += 5
		case roe > 5:
			score.Business += 2
		}
	} else {
		switch {
		case opm > 20:
			score.Business += 10
		case opm > 12:
			score.Business += 5
		case opm > 8:
			score.Business += 2
			score.Reasons = append(score.Reasons, ReasonLowMargin)
		}
	}
	score.Business = minInt(40, score.Business)

	// Moat: efficiency, size, operating leverage, momentum floor.
	if cls.FinancialLike {
		if roe > 18 {
			score.Moat += 8
		} else if roe > 12 {
			score.Moat += 5
		}
	} else {
		if opm > 18 {
			score.Moat += 5
		}
		if roce > 20 {
			score.Moat += 5
		}
	}
	if mcap > 20000 {
		score.Moat += 5
	} else if mcap > 5000 {
		score.Moat += 3
	}
	if profitGrowth > salesGrowth {
		score.Moat += 5
	}
	if ret1y > 40 {
		score.Moat = maxInt(score.Moat+5, 18)
	}
	score.Moat = minInt(20, score.Moat)

	// Management: valuation relative to delivery, or size-based turnaround
	// tiers when earnings are negative (no meaningful P/E).
	if pe > 0 {
		switch {
		case pe < 15 && (profitGrowth > 10 || roe > 15):
			score.Management += 20
		case pe < 25:
			score.Management += 10
		case pe < 60:
			score.Management += 5
		}
	} else {
		if mcap > 50000 {
			score.Management += 10
			score.Reasons = append(score.Reasons, ReasonTurnaroundGiant)
		} else if mcap > 10000 {
			score.Management += 5
			score.Reasons = append(score.Reasons, ReasonRecovering)
		}
	}
	score.Management = minInt(20, score.Management)

	// Risk: size tiers can push below zero before the clamp.
	if mcap > 0 {
		switch {
		case mcap < 500:
			score.Risk -= 10
			score.Reasons = append(score.Reasons, ReasonMicroCapRisk)
		case mcap > 5000:
			score.Risk += 10
		case mcap > 2000:
			score.Risk += 5
		}
	}
	if ret1y > 40 {
		score.Risk += 10
	} else if beta < 1.1 {
		score.Risk += 10
	} else if beta < 1.3 {
		score.Risk += 5
	}
	score.Risk = clampInt(score.Risk, 0, 20)

	score.Total = score.Business + score.Moat + score.Management + score.Risk

	// Value bonuses on the raw total.
	if pe < 15 && roe > 15 && profitGrowth > 0 {
		score.Total += 15
		score.Reasons = append(score.Reasons, ReasonHighQualityValue)
	} else if pe < 12 && profitGrowth > 10 {
		score.Total += 10
		score.Reasons = append(score.Reasons, ReasonDeepValue)
	}

	score.Total = minInt(99, score.Total)
	score.Explanation = explanationFromReasons(score.Reasons, score.Total)
	return score
}

// explanationFromReasons renders the short tag: the first two collected
// reasons joined by "&", falling back to a quality word.
func explanationFromReasons(reasons []Reason, total int) string {
	if len(reasons) > 0 {
		if len(reasons) == 1 {
			return string(reasons[0])
		}
		return string(reasons[0]) + " & " + string(reasons[1])
	}
	if total > 50 {
		return "Stable"
	}
	return "Weak"
}

func round(v float64) int {
	return int(math.Round(v))
}
