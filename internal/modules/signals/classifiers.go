// Package signals derives the qualitative labels and small numeric bonuses
// that sit between the raw scores and the decision engine: conviction,
// trajectory, price timing, valuation timing, and data confidence.
package signals

import (
	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/scoring"
)

// Conviction is the coarse quality label fused from the composite scores.
type Conviction string

const (
	ConvictionStrong Conviction = "Strong"
	ConvictionStable Conviction = "Stable"
	ConvictionWeak   Conviction = "Weak"
)

// Trajectory is the direction of fundamental momentum. Equities only; the
// empty value means not applicable.
type Trajectory string

const (
	TrajectoryImproving     Trajectory = "Improving"
	TrajectoryFlat          Trajectory = "Flat"
	TrajectoryDeteriorating Trajectory = "Deteriorating"
)

// Timing is the price-trend label, independent of fundamentals.
type Timing string

const (
	TimingFavourable   Timing = "Favourable"
	TimingNeutral      Timing = "Neutral"
	TimingUnfavourable Timing = "Unfavourable"
)

// FundamentalTiming is the valuation-vs-growth cycle label. Equities only.
type FundamentalTiming string

const (
	FundamentalTimingEarly   FundamentalTiming = "Early"
	FundamentalTimingOptimal FundamentalTiming = "Optimal"
	FundamentalTimingLate    FundamentalTiming = "Late"
)

// CalculateConviction fuses the fundamental and moat totals. With a moat
// score the average decides on 60/40 thresholds; without one the
// fundamental total alone decides on stricter 65/40 thresholds.
func CalculateConviction(fundamentalTotal int, porter *scoring.PorterScore) Conviction {
	if porter != nil {
		avg := float64(fundamentalTotal+porter.Total) / 2
		if avg >= 60 {
			return ConvictionStrong
		}
		if avg <= 40 {
			return ConvictionWeak
		}
		return ConvictionStable
	}
	if fundamentalTotal >= 65 {
		return ConvictionStrong
	}
	if fundamentalTotal <= 40 {
		return ConvictionWeak
	}
	return ConvictionStable
}

// CalculateTrajectory labels the direction of fundamental momentum for an
// equity. Non-equities get no trajectory.
func CalculateTrajectory(rec *domain.AssetRecord) Trajectory {
	if rec.Class != domain.AssetClassEquity {
		return ""
	}
	sales := rec.SalesGrowth
	profit := rec.ProfitGrowth
	roe := rec.ROE

	if sales < 0 || profit < 0 {
		return TrajectoryDeteriorating
	}
	if profit < 5 && sales < 5 {
		return TrajectoryDeteriorating
	}
	if profit > sales && sales > 5 && profit > 10 {
		return TrajectoryImproving
	}
	if roe > 20 && profit > 10 {
		return TrajectoryImproving
	}
	return TrajectoryFlat
}

// CalculateTiming combines price trend and return momentum.
//
// Trend comes from the 200-day moving average when known, otherwise from
// the 1-year return. Momentum compares 1-year to 3-year returns with a
// 5-point band. The combination falls back to Neutral, with a final
// fallback of Unfavourable when the 1-year return is non-positive.
func CalculateTiming(rec *domain.AssetRecord) Timing {
	price := rec.Price
	r1y := rec.Ret1Y()
	r3y := rec.Ret3Y()
	ma200 := 0.0
	if rec.Technicals != nil {
		ma200 = rec.Technicals.MA200
	}

	trend := "Neutral"
	if ma200 > 0 {
		if price > ma200 {
			trend = "Up"
		} else {
			trend = "Down"
		}
	} else if r1y > 10 {
		trend = "Up"
	} else if r1y < -5 {
		trend = "Down"
	}

	momentum := "Stable"
	if r1y > r3y+5 {
		momentum = "Improving"
	} else if r1y < r3y-5 {
		momentum = "Weakening"
	}

	switch {
	case trend == "Up" && momentum == "Improving":
		return TimingFavourable
	case trend == "Down" && momentum == "Weakening":
		return TimingUnfavourable
	case trend == "Up" && momentum == "Weakening":
		return TimingNeutral
	case trend == "Down" && momentum == "Improving":
		return TimingNeutral
	}
	if r1y > 0 {
		return TimingNeutral
	}
	return TimingUnfavourable
}

// CalculateFundamentalTiming labels where an equity sits in its
// valuation-vs-growth cycle. Non-equities get no label.
func CalculateFundamentalTiming(rec *domain.AssetRecord) FundamentalTiming {
	if rec.Class != domain.AssetClassEquity {
		return ""
	}
	profitGrowth := rec.ProfitGrowth
	pe := rec.PE
	r1y := rec.Ret1Y()

	if r1y > 100 || (pe > 60 && profitGrowth < 10) || profitGrowth < 0 {
		return FundamentalTimingLate
	}
	if (profitGrowth > 15 && r1y < 5) || (pe > 0 && pe < 15 && profitGrowth > 5) {
		return FundamentalTimingEarly
	}
	if profitGrowth > 5 && r1y >= 5 && r1y <= 80 {
		return FundamentalTimingOptimal
	}
	if r1y > 0 {
		return FundamentalTimingOptimal
	}
	return FundamentalTimingEarly
}
