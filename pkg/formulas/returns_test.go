package formulas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNAVReturns_ShortHistoryIsZero(t *testing.T) {
	history := []NAVPoint{
		{Date: time.Now(), NAV: 100},
		{Date: time.Now().AddDate(0, -1, 0), NAV: 95},
	}
	returns := CalculateNAVReturns(history)
	assert.Zero(t, returns.R1Y)
	assert.Zero(t, returns.R3Y)
	assert.Zero(t, returns.R5Y)
}

func TestCalculateNAVReturns_CAGR(t *testing.T) {
	now := time.Now()
	history := []NAVPoint{{Date: now, NAV: 200}}
	// Recent filler points keep the series above the minimum length without
	// being old enough to match any horizon.
	for m := 1; m <= 9; m++ {
		history = append(history, NAVPoint{Date: now.AddDate(0, -m, 0), NAV: 190})
	}
	history = append(history,
		NAVPoint{Date: now.AddDate(-1, 0, -7), NAV: 100},
		NAVPoint{Date: now.AddDate(-3, 0, -7), NAV: 50},
		NAVPoint{Date: now.AddDate(-5, 0, -7), NAV: 25},
	)

	returns := CalculateNAVReturns(history)

	// 200/100 over 1y doubles: 100%.
	assert.InDelta(t, 100.0, returns.R1Y, 0.5)
	// 200/50 over 3y: 4^(1/3)-1 = 58.7%.
	assert.InDelta(t, 58.74, returns.R3Y, 0.5)
	// 200/25 over 5y: 8^(1/5)-1 = 51.6%.
	assert.InDelta(t, 51.57, returns.R5Y, 0.5)
}

func TestCalculateNAVReturns_MissingHorizonContributesZero(t *testing.T) {
	now := time.Now()
	history := []NAVPoint{{Date: now, NAV: 150}}
	for m := 1; m <= 10; m++ {
		history = append(history, NAVPoint{Date: now.AddDate(0, -m, 0), NAV: 140})
	}
	// Oldest point is well under 3 years old.
	history = append(history, NAVPoint{Date: now.AddDate(-1, 0, -7), NAV: 100})

	returns := CalculateNAVReturns(history)
	assert.InDelta(t, 50.0, returns.R1Y, 0.5)
	assert.Zero(t, returns.R3Y)
	assert.Zero(t, returns.R5Y)
}
