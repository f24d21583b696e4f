// Package domain provides core domain models and types.
package domain

import "strings"

// AssetClass represents the type of financial instrument
type AssetClass string

const (
	// AssetClassEquity represents individual stocks/shares
	AssetClassEquity AssetClass = "EQUITY"
	// AssetClassFund represents mutual funds
	AssetClassFund AssetClass = "FUND"
	// AssetClassETF represents exchange traded funds
	AssetClassETF AssetClass = "ETF"
)

// IsFundLike reports whether the class is scored on trailing returns
// rather than fundamentals (funds and ETFs).
func (c AssetClass) IsFundLike() bool {
	return c == AssetClassFund || c == AssetClassETF
}

// SourceTechnicalOnly tags records built from a price-history-only provider.
// Such records carry no trustworthy fundamentals, which lowers data
// confidence and disables the returns-based fund scoring path for ETFs.
const SourceTechnicalOnly = "GOOGLE"

// TrailingReturns holds annualized trailing returns in percent.
type TrailingReturns struct {
	R1Y float64 `json:"r1y" msgpack:"r1y"`
	R3Y float64 `json:"r3y" msgpack:"r3y"`
	R5Y float64 `json:"r5y" msgpack:"r5y"`
}

// Technicals holds price-derived indicators.
type Technicals struct {
	High52 float64 `json:"high52" msgpack:"high52"`
	Low52  float64 `json:"low52" msgpack:"low52"`
	MA50   float64 `json:"ma50" msgpack:"ma50"`
	MA200  float64 `json:"ma200" msgpack:"ma200"`
}

// AssetRecord is a fully-resolved input record for one asset, produced by
// the acquisition layer. All numeric fields are optional: a missing value
// is zero, never an error. The engine requires only Price > 0 to score.
type AssetRecord struct {
	Symbol string     `json:"symbol" msgpack:"symbol"`
	Name   string     `json:"name" msgpack:"name"`
	Class  AssetClass `json:"class" msgpack:"class"`
	Source string     `json:"source,omitempty" msgpack:"source,omitempty"`

	Price        float64 `json:"price" msgpack:"price"`
	PE           float64 `json:"pe,omitempty" msgpack:"pe,omitempty"`
	ROE          float64 `json:"roe,omitempty" msgpack:"roe,omitempty"`
	ROCE         float64 `json:"roce,omitempty" msgpack:"roce,omitempty"`
	OPM          float64 `json:"opm,omitempty" msgpack:"opm,omitempty"`
	SalesGrowth  float64 `json:"growth,omitempty" msgpack:"growth,omitempty"`
	ProfitGrowth float64 `json:"profit_growth,omitempty" msgpack:"profit_growth,omitempty"`
	MarketCap    float64 `json:"mcap,omitempty" msgpack:"mcap,omitempty"`
	Beta         float64 `json:"beta,omitempty" msgpack:"beta,omitempty"`

	Returns    *TrailingReturns `json:"returns,omitempty" msgpack:"returns,omitempty"`
	Technicals *Technicals      `json:"technicals,omitempty" msgpack:"technicals,omitempty"`
}

// Ret1Y returns the trailing 1-year return, or 0 when absent.
func (r *AssetRecord) Ret1Y() float64 {
	if r.Returns == nil {
		return 0
	}
	return r.Returns.R1Y
}

// Ret3Y returns the trailing 3-year return, or 0 when absent.
func (r *AssetRecord) Ret3Y() float64 {
	if r.Returns == nil {
		return 0
	}
	return r.Returns.R3Y
}

// Ret5Y returns the trailing 5-year return, or 0 when absent.
func (r *AssetRecord) Ret5Y() float64 {
	if r.Returns == nil {
		return 0
	}
	return r.Returns.R5Y
}

// UpperName returns the display name uppercased for keyword matching.
func (r *AssetRecord) UpperName() string {
	return strings.ToUpper(r.Name)
}

// Holding represents one position in the caller-supplied holdings snapshot.
type Holding struct {
	Quantity    float64 `json:"quantity" msgpack:"quantity"`
	AverageCost float64 `json:"average_cost" msgpack:"average_cost"`
}

// CleanTicker strips exchange suffixes from a raw symbol (e.g. "INFY.NS",
// "RELIANCE:BSE") so portfolio output uses a stable display form.
func CleanTicker(symbol string) string {
	if symbol == "" {
		return ""
	}
	for _, suffix := range []string{".NS", ".BO", ":NSE", ":BSE"} {
		if strings.HasSuffix(symbol, suffix) {
			return strings.TrimSuffix(symbol, suffix)
		}
	}
	return symbol
}

// DisplayName returns the record's name when known, otherwise the cleaned
// ticker.
func DisplayName(symbol string, record *AssetRecord) string {
	if record != nil && record.Name != "" {
		return record.Name
	}
	return CleanTicker(symbol)
}
