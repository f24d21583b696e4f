package signals

import (
	"github.com/moreshwar/stocky/internal/domain"
)

// Confidence grades how trustworthy the inputs behind a verdict are.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// CalculateDataConfidence scores which input fields were present and
// trustworthy. Starts at 3 and deducts for missing or anomalous data:
// 3 maps to High, 2 to Medium, anything lower to Low.
func CalculateDataConfidence(rec *domain.AssetRecord) Confidence {
	score := 3

	if rec.Class == domain.AssetClassEquity {
		if rec.Source == domain.SourceTechnicalOnly {
			score -= 2
		} else {
			if rec.ProfitGrowth == 0 && rec.SalesGrowth == 0 {
				score--
			}
			if rec.ROE == 0 && rec.ROCE == 0 {
				score--
			}
		}
		if rec.Ret3Y() == 0 {
			score--
		}
	} else {
		if rec.Ret3Y() == 0 || rec.Ret5Y() == 0 {
			score--
		}
	}

	// A triple-digit 1y return against collapsing profits usually signals a
	// low-base distortion in the feed, not a real repricing.
	if rec.Ret1Y() > 100 && rec.ProfitGrowth < -20 {
		score--
	}

	if score >= 3 {
		return ConfidenceHigh
	}
	if score == 2 {
		return ConfidenceMedium
	}
	return ConfidenceLow
}
