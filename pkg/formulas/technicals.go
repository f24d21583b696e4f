// Package formulas provides the small numeric helpers used to prepare
// asset records before evaluation: moving averages, 52-week ranges and
// trailing-return CAGRs.
package formulas

import (
	"math"

	"github.com/markcheno/go-talib"

	"github.com/moreshwar/stocky/internal/domain"
)

// CalculateSMA calculates the Simple Moving Average over the given period.
// Returns nil when there is not enough data.
func CalculateSMA(closes []float64, period int) *float64 {
	if period <= 0 || len(closes) < period {
		return nil
	}

	sma := talib.Sma(closes, period)
	if len(sma) > 0 && !math.IsNaN(sma[len(sma)-1]) {
		result := sma[len(sma)-1]
		return &result
	}

	// Fallback to a plain mean of the last 'period' closes
	mean := Mean(closes[len(closes)-period:])
	return &mean
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// DeriveTechnicals builds the Technicals block from up to a year of daily
// closes (most recent last). The 52-week high/low come from the window
// itself; the 50 and 200-day moving averages are filled when enough
// history exists. Returns nil for an empty series.
func DeriveTechnicals(closes []float64) *domain.Technicals {
	if len(closes) == 0 {
		return nil
	}

	t := &domain.Technicals{
		High52: closes[0],
		Low52:  closes[0],
	}
	for _, c := range closes {
		if c > t.High52 {
			t.High52 = c
		}
		if c < t.Low52 {
			t.Low52 = c
		}
	}

	if ma := CalculateSMA(closes, 50); ma != nil {
		t.MA50 = *ma
	}
	if ma := CalculateSMA(closes, 200); ma != nil {
		t.MA200 = *ma
	}
	return t
}
