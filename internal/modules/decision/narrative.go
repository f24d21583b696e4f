package decision

import (
	"fmt"
	"strings"

	"github.com/moreshwar/stocky/internal/modules/signals"
)

// Narrative expands (composite score, valuation timing, held) into the
// three-sentence explanation shown to users. It is a second layer on top of
// the decision table, not a paraphrase of its rationale: strength is
// re-derived from the score on 65/40 thresholds rather than taken from the
// conviction label.
func Narrative(score int, timing signals.FundamentalTiming, held bool) string {
	strength := "Moderate"
	if score >= 65 {
		strength = "Strong"
	} else if score <= 40 {
		strength = "Weak"
	}

	timingWord := "neutral"
	if timing != "" {
		timingWord = strings.ToLower(string(timing))
	}

	s1 := fmt.Sprintf("The fundamentals are %s and the timing appears %s.", strings.ToLower(strength), timingWord)

	var s2, s3 string
	switch strength {
	case "Strong":
		if timing == signals.FundamentalTimingOptimal || timing == signals.FundamentalTimingEarly {
			s2 = "This alignment suggests high conviction with a supportive entry price."
			if held {
				s3 = "Consider adding to this winning position."
			} else {
				s3 = "It is a prime setup to deploy capital aggressively."
			}
		} else {
			s2 = "However, the price has extended far beyond the ideal entry zone."
			if held {
				s3 = "Hold and ride the trend, but avoid fresh aggressive buying."
			} else {
				s3 = "Wait for a meaningful correction to improve the safety margin."
			}
		}
	case "Moderate":
		if timing == signals.FundamentalTimingOptimal {
			s2 = "While not exceptional, the valuation offers a decent safety net."
			if held {
				s3 = "Keep holding, but monitor for better opportunities."
			} else {
				s3 = "A small, staggered allocation is appropriate here."
			}
		} else {
			s2 = "Lacking both superior quality and perfect timing, the edge is thin."
			if held {
				s3 = "Review position size; upsides may be capped."
			} else {
				s3 = "It is better to remain on the sidelines for now."
			}
		}
	default:
		s2 = "The core business metrics do not support a long-term investment case."
		if held {
			s3 = "Capital preservation is priority; plan an exit strategy."
		} else {
			s3 = "Capital preservation is priority; avoid this counter."
		}
	}

	return fmt.Sprintf("%s %s %s", s1, s2, s3)
}
