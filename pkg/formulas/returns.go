package formulas

import (
	"math"
	"time"

	"github.com/moreshwar/stocky/internal/domain"
)

// NAVPoint is one entry of a fund's NAV history, most recent first.
type NAVPoint struct {
	Date time.Time
	NAV  float64
}

// minHistoryPoints guards against computing CAGRs from a stub series.
const minHistoryPoints = 10

// CalculateNAVReturns derives 1/3/5-year annualized returns (percent) from
// a NAV history ordered most recent first. A horizon whose starting NAV is
// not in the history contributes 0, never an error.
func CalculateNAVReturns(history []NAVPoint) domain.TrailingReturns {
	if len(history) < minHistoryPoints {
		return domain.TrailingReturns{}
	}

	now := history[0].NAV
	return domain.TrailingReturns{
		R1Y: cagrFrom(history, now, 1),
		R3Y: cagrFrom(history, now, 3),
		R5Y: cagrFrom(history, now, 5),
	}
}

// cagrFrom finds the first NAV at or before `years` ago and annualizes the
// growth from it to the current NAV.
func cagrFrom(history []NAVPoint, now float64, years int) float64 {
	target := time.Now().AddDate(-years, 0, 0)
	for _, p := range history {
		if !p.Date.After(target) {
			if p.NAV <= 0 {
				return 0
			}
			return (math.Pow(now/p.NAV, 1/float64(years)) - 1) * 100
		}
	}
	return 0
}
