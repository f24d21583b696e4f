package portfolio

// Allocation bucket labels. Cash is always present in the allocation map
// for output stability even though the engine never sees cash balances.
const (
	BucketEquity      = "Equity"
	BucketCash        = "Cash"
	BucketMutualFunds = "Mutual Funds"
	BucketETF         = "ETF"
)

// SectorDiversified is the sector bucket for funds without a recognizable
// sector tilt; it is exempt from concentration alerts, as is GENERAL.
const SectorDiversified = "DIVERSIFIED"

// SectorExposure is one entry of the ranked sector breakdown.
type SectorExposure struct {
	Sector string  `json:"sector" msgpack:"sector"`
	Value  float64 `json:"value" msgpack:"value"`
}

// EfficiencyKind classifies a capital-efficiency flag.
type EfficiencyKind string

const (
	EfficiencyBad  EfficiencyKind = "bad"  // weak asset with high weight
	EfficiencyGood EfficiencyKind = "good" // strong asset with low weight
	EfficiencyTail EfficiencyKind = "tail" // low-conviction position too small to matter
)

// EfficiencyFlag annotates allocation mismatched to asset quality.
type EfficiencyFlag struct {
	Kind EfficiencyKind `json:"kind" msgpack:"kind"`
	Text string         `json:"text" msgpack:"text"`
}

// Risk is the portfolio risk block: concentration alerts, ranked sector
// exposure, the diversification score and the beta sensitivity label.
type Risk struct {
	Alerts               []string         `json:"alerts" msgpack:"alerts"`
	Sectors              []SectorExposure `json:"sectors" msgpack:"sectors"`
	DiversificationScore int              `json:"diversification_score" msgpack:"diversification_score"`
	Sensitivity          string           `json:"sensitivity" msgpack:"sensitivity"`
}

// Analytics is the portfolio-wide result, recomputed wholesale on every
// aggregation call. There is no incremental state behind it.
type Analytics struct {
	TotalValue  float64            `json:"total_value" msgpack:"total_value"`
	ScoredValue float64            `json:"scored_value" msgpack:"scored_value"`
	HealthScore int                `json:"health_score" msgpack:"health_score"`
	Allocation  map[string]float64 `json:"allocation" msgpack:"allocation"`
	Risk        Risk               `json:"risk" msgpack:"risk"`
	Efficiency  []EfficiencyFlag   `json:"efficiency" msgpack:"efficiency"`
}
