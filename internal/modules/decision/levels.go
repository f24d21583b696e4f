package decision

import (
	"math"

	"github.com/moreshwar/stocky/internal/modules/scoring"
)

// PriceLevels holds the derived price points. Target and StopLoss are set
// for held assets; Entry for unheld ones (it doubles as the "avoid until"
// level when the verdict is AVOID or WAIT).
type PriceLevels struct {
	Edge     int      `json:"edge" msgpack:"edge"`
	Target   *float64 `json:"target,omitempty" msgpack:"target,omitempty"`
	StopLoss *float64 `json:"stop_loss,omitempty" msgpack:"stop_loss,omitempty"`
	Entry    *float64 `json:"entry,omitempty" msgpack:"entry,omitempty"`
}

// CalculateLevels derives price levels from the composite edge: the average
// of the fundamental and moat totals, or the fundamental total alone when
// there is no moat score.
//
// Derived levels are floored at 0: a low price with a small edge would
// otherwise produce a negative stop-loss or entry, which is meaningless as
// a price.
func CalculateLevels(price float64, fundamentalTotal int, porter *scoring.PorterScore, held bool) PriceLevels {
	edge := fundamentalTotal
	if porter != nil {
		edge = int(math.Round(float64(fundamentalTotal+porter.Total) / 2))
	}

	levels := PriceLevels{Edge: edge}
	offset := float64(100 - edge)

	if held {
		target := price + float64(edge)
		stop := math.Max(0, price-offset)
		levels.Target = &target
		levels.StopLoss = &stop
	} else {
		entry := math.Max(0, price-offset)
		levels.Entry = &entry
	}
	return levels
}
