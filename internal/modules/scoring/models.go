package scoring

// Reason is a closed vocabulary of scoring annotations. The values double
// as the human-readable phrase so downstream layers need no lookup table.
type Reason string

const (
	ReasonSalesDrag        Reason = "Sales Drag"
	ReasonProfitDrag       Reason = "Profit Drag"
	ReasonLowMargin        Reason = "Low Margin"
	ReasonTurnaroundGiant  Reason = "Turnaround Giant"
	ReasonRecovering       Reason = "Recovering"
	ReasonMicroCapRisk     Reason = "Micro Cap Risk"
	ReasonHighQualityValue Reason = "High Quality Value"
	ReasonDeepValue        Reason = "Deep Value"
)

// FundamentalScore holds the four sub-scores and the derived total.
// Sub-score caps before normalization: Business 40, the rest 20 each.
// Total is clamped to [0, 99].
type FundamentalScore struct {
	Business    int      `json:"business" msgpack:"business"`
	Moat        int      `json:"moat" msgpack:"moat"`
	Management  int      `json:"management" msgpack:"management"`
	Risk        int      `json:"risk" msgpack:"risk"`
	Total       int      `json:"total" msgpack:"total"`
	Explanation string   `json:"explanation" msgpack:"explanation"`
	Reasons     []Reason `json:"reasons,omitempty" msgpack:"reasons,omitempty"`
}

// PorterScore holds the five competitive-forces sub-scores, each 5-20,
// with the total clamped to 99. Equities only.
type PorterScore struct {
	Entrants    int `json:"entrants" msgpack:"entrants"`
	Suppliers   int `json:"suppliers" msgpack:"suppliers"`
	Buyers      int `json:"buyers" msgpack:"buyers"`
	Substitutes int `json:"substitutes" msgpack:"substitutes"`
	Rivalry     int `json:"rivalry" msgpack:"rivalry"`
	Total       int `json:"total" msgpack:"total"`
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
