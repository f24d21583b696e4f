// Package decision fuses conviction, trajectory and timing into a final
// buy/hold/exit verdict, the longer narrative summary, and the derived
// price levels.
package decision

import (
	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/signals"
)

// Action is the fixed verdict vocabulary.
type Action string

const (
	ActionBuyNow  Action = "BUY NOW"
	ActionAdd     Action = "ADD"
	ActionSIPOnly Action = "SIP ONLY"
	ActionHold    Action = "HOLD"
	ActionWait    Action = "WAIT"
	ActionReview  Action = "REVIEW"
	ActionReduce  Action = "REDUCE"
	ActionExit    Action = "EXIT"
	ActionAvoid   Action = "AVOID"
)

// TimingSignal is the timing vocabulary the decision table evaluates. It
// covers the price-timing labels plus Late, so callers can feed either the
// price timing or the valuation timing into the table.
type TimingSignal string

const (
	TimingSignalFavourable   TimingSignal = "Favourable"
	TimingSignalNeutral      TimingSignal = "Neutral"
	TimingSignalUnfavourable TimingSignal = "Unfavourable"
	TimingSignalLate         TimingSignal = "Late"
)

// Decision is a verdict with its fixed rationale sentence.
type Decision struct {
	Action    Action `json:"action" msgpack:"action"`
	Rationale string `json:"rationale" msgpack:"rationale"`
}

// Decide maps (conviction, trajectory, timing, class, held) to exactly one
// action. Weak conviction decides alone; for funds and ETFs the trajectory
// is proxied from timing since they carry no fundamental trajectory.
func Decide(
	conviction signals.Conviction,
	trajectory signals.Trajectory,
	timing TimingSignal,
	class domain.AssetClass,
	held bool,
) Decision {
	effTrajectory := trajectory
	if class != domain.AssetClassEquity {
		if timing == TimingSignalFavourable {
			effTrajectory = signals.TrajectoryImproving
		} else {
			effTrajectory = signals.TrajectoryFlat
		}
	}

	switch conviction {
	case signals.ConvictionWeak:
		if held {
			return Decision{ActionExit, "Fundamental thesis has deteriorated significantly. Risks outweigh rewards."}
		}
		return Decision{ActionAvoid, "Quality does not meet the threshold for investment. Look elsewhere."}

	case signals.ConvictionStrong:
		switch {
		case effTrajectory == signals.TrajectoryDeteriorating:
			if held {
				return Decision{ActionReview, "Fundamentals are strong but momentum is fading. Watch closely."}
			}
			return Decision{ActionWait, "Great company, but business momentum is slowing. Wait for stabilization."}
		case timing == TimingSignalLate:
			if held {
				return Decision{ActionHold, "Expensive, but quality is high. Ride the trend, but don't add aggressively."}
			}
			return Decision{ActionWait, "Fundamentals are great, but the price is extended. Wait for a dip."}
		default:
			if held {
				return Decision{ActionAdd, "Everything aligns: Quality, Growth, and Trend. Good level to increase allocation."}
			}
			return Decision{ActionBuyNow, "Prime setup: High conviction matched with accelerating business performance."}
		}

	default: // Stable
		switch {
		case effTrajectory == signals.TrajectoryDeteriorating:
			if held {
				return Decision{ActionReduce, "Business stability is threatened by slowing growth trends."}
			}
			return Decision{ActionAvoid, "Business stability is threatened by slowing growth trends."}
		case timing == TimingSignalUnfavourable:
			if held {
				return Decision{ActionHold, "Price is weak, but business is stable. No urgency to exit yet."}
			}
			return Decision{ActionWait, "Stable business, but negative price trend. Wait for support."}
		default:
			if held {
				return Decision{ActionHold, "A steady performer. Continue holding for consistent compounding."}
			}
			return Decision{ActionSIPOnly, "Decent stability warrants a small, staggered allocation approach."}
		}
	}
}
