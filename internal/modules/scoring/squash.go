package scoring

import "math"

// Squash applies a diminishing-returns transform to a boosted raw total.
// Totals up to 60 pass through unchanged; the excess above 60 compresses
// exponentially toward an asymptote just below 99, so stacked bonuses can
// never push a fund's displayed score past the cap.
//
//	squash(60) == 60
//	squash is monotonically non-decreasing
//	squash(x) <= 99 for all x
func Squash(rawTotal int) int {
	if rawTotal <= 60 {
		return maxInt(0, rawTotal)
	}
	excess := float64(rawTotal - 60)
	squashed := 39 * (1 - math.Exp(-0.035*excess))
	return round(60 + squashed)
}

// ClampTotal bounds an equity's boosted total to the score range.
func ClampTotal(rawTotal int) int {
	return clampInt(rawTotal, 0, 99)
}
