package scoring

import (
	"fmt"
	"strings"

	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/industry"
)

// Missing-data penalty per required metric, and the soft floor that keeps
// an otherwise-decent score from collapsing when required metrics are
// absent. The floor value is fixed at 25; do not derive it from the others.
const (
	missingMetricPenalty = 20
	softFloorTrigger     = 40
	softFloorBelow       = 20
	softFloorValue       = 25
)

// Normalize reweights a raw fundamental score by the asset's industry
// profile and applies the missing-required-metric penalty.
//
// The transform is pure: the input score is not modified and a fresh score
// is returned. It must be applied exactly once per raw score; normalizing
// an already-normalized score double-applies the industry weights.
func Normalize(raw FundamentalScore, rec *domain.AssetRecord, cls industry.Classification) FundamentalScore {
	profile := cls.Industry
	score := raw
	score.Reasons = append([]Reason(nil), raw.Reasons...)

	penalty := 0
	for _, metric := range profile.Required {
		if industry.MetricValue(rec, metric) == 0 {
			penalty += missingMetricPenalty
			missing := fmt.Sprintf("Missing %s", metric)
			if score.Explanation != "" {
				score.Explanation = fmt.Sprintf("%s (%s)", score.Explanation, missing)
			} else {
				score.Explanation = missing
			}
		}
	}

	// Weights apply unconditionally, penalty or not.
	score.Business = round(float64(score.Business) * profile.Weights.Business)
	score.Moat = round(float64(score.Moat) * profile.Weights.Moat)
	score.Management = round(float64(score.Management) * profile.Weights.Management)
	score.Risk = round(float64(score.Risk) * profile.Weights.Risk)

	weightedTotal := score.Business + score.Moat + score.Management + score.Risk
	finalTotal := weightedTotal - penalty

	// Soft floor: a decent pre-penalty score must not crash to near-zero on
	// a single missing metric.
	if weightedTotal > softFloorTrigger && finalTotal < softFloorBelow {
		finalTotal = softFloorValue
	}

	score.Total = clampInt(finalTotal, 0, 99)

	if profile.Name != industry.General {
		suffix := fmt.Sprintf("(%s)", profile.Name)
		if !strings.Contains(score.Explanation, suffix) {
			if score.Explanation != "" {
				score.Explanation = score.Explanation + " " + suffix
			} else {
				score.Explanation = suffix
			}
		}
	}

	return score
}
