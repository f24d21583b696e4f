package scoring

import (
	"github.com/moreshwar/stocky/internal/domain"
)

// ScorePorter estimates competitive strength as five independent force
// scores, each a 5-20 tier lookup over one fundamental. It is a raw
// secondary signal: no industry weighting, no normalization. Returns nil
// for anything that is not an equity.
func ScorePorter(rec *domain.AssetRecord) *PorterScore {
	if rec.Class != domain.AssetClassEquity {
		return nil
	}

	roe := rec.ROE
	roce := rec.ROCE
	salesGrowth := rec.SalesGrowth
	profitGrowth := rec.ProfitGrowth
	opm := rec.OPM
	mcap := rec.MarketCap

	p := &PorterScore{}

	// Barriers to entry: scale plus capital efficiency.
	switch {
	case mcap > 10000 && roce > 20:
		p.Entrants = 20
	case mcap > 5000 && roce > 15:
		p.Entrants = 15
	case mcap > 2000:
		p.Entrants = 10
	default:
		p.Entrants = 5
	}

	// Supplier power: margins show pricing room.
	switch {
	case opm > 25:
		p.Suppliers = 20
	case opm > 18:
		p.Suppliers = 15
	case opm > 10:
		p.Suppliers = 10
	default:
		p.Suppliers = 5
	}

	// Buyer power: return on equity.
	switch {
	case roe > 22:
		p.Buyers = 20
	case roe > 16:
		p.Buyers = 15
	case roe > 12:
		p.Buyers = 10
	default:
		p.Buyers = 5
	}

	// Substitutes: top-line growth.
	switch {
	case salesGrowth > 15:
		p.Substitutes = 20
	case salesGrowth > 10:
		p.Substitutes = 15
	case salesGrowth > 5:
		p.Substitutes = 10
	default:
		p.Substitutes = 5
	}

	// Rivalry: bottom-line growth.
	switch {
	case profitGrowth > 15:
		p.Rivalry = 20
	case profitGrowth > 10:
		p.Rivalry = 15
	case profitGrowth > 0:
		p.Rivalry = 10
	default:
		p.Rivalry = 5
	}

	p.Total = minInt(99, p.Entrants+p.Suppliers+p.Buyers+p.Substitutes+p.Rivalry)
	return p
}
