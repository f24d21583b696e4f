package evaluation

import (
	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/decision"
	"github.com/moreshwar/stocky/internal/modules/scoring"
	"github.com/moreshwar/stocky/internal/modules/signals"
)

// AssetReport is the complete per-asset result object exposed to the
// presentation and chat layers. When Scoreable is false (insufficient data
// or non-positive price) only the classification, timing and confidence
// fields are populated; there is no verdict, no narrative and no levels.
type AssetReport struct {
	Symbol        string            `json:"symbol" msgpack:"symbol"`
	Name          string            `json:"name" msgpack:"name"`
	Class         domain.AssetClass `json:"class" msgpack:"class"`
	Industry      string            `json:"industry" msgpack:"industry"`
	FinancialLike bool              `json:"financial_like" msgpack:"financial_like"`
	Held          bool              `json:"held" msgpack:"held"`
	Scoreable     bool              `json:"scoreable" msgpack:"scoreable"`

	Fundamental *scoring.FundamentalScore `json:"fundamental,omitempty" msgpack:"fundamental,omitempty"`
	Porter      *scoring.PorterScore      `json:"porter,omitempty" msgpack:"porter,omitempty"`

	// Composite is the displayed total: the normalized fundamental total
	// plus the trajectory and relative-strength bonuses, squashed for
	// funds/ETFs and clamped for equities.
	Composite        int `json:"composite" msgpack:"composite"`
	TrajectoryBonus  int `json:"trajectory_bonus" msgpack:"trajectory_bonus"`
	RelativeStrength int `json:"relative_strength" msgpack:"relative_strength"`

	Conviction        signals.Conviction        `json:"conviction,omitempty" msgpack:"conviction,omitempty"`
	Trajectory        signals.Trajectory        `json:"trajectory,omitempty" msgpack:"trajectory,omitempty"`
	Timing            signals.Timing            `json:"timing" msgpack:"timing"`
	FundamentalTiming signals.FundamentalTiming `json:"fundamental_timing,omitempty" msgpack:"fundamental_timing,omitempty"`
	Confidence        signals.Confidence        `json:"confidence" msgpack:"confidence"`

	Decision  *decision.Decision    `json:"decision,omitempty" msgpack:"decision,omitempty"`
	Narrative string                `json:"narrative,omitempty" msgpack:"narrative,omitempty"`
	Levels    *decision.PriceLevels `json:"levels,omitempty" msgpack:"levels,omitempty"`
}
