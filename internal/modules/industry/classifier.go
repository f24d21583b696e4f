// Package industry maps equities onto industry profiles and computes the
// shared asset classification used across scoring and signals.
package industry

import (
	"strings"

	"github.com/moreshwar/stocky/internal/domain"
)

// Classification is the consolidated per-asset classification computed once
// and threaded through the whole pipeline, so the scorer, the normalizer and
// the relative-strength calculator never disagree about what an asset is.
type Classification struct {
	Class         domain.AssetClass
	Industry      Profile
	FinancialLike bool
}

// Detect finds the industry profile for an asset. Non-equities are always
// GENERAL. Profiles are scanned in declaration order and the first keyword
// that is a substring of the uppercased name wins; no match means GENERAL.
func Detect(name string, class domain.AssetClass) Profile {
	if class != domain.AssetClassEquity {
		return GeneralProfile()
	}
	upper := strings.ToUpper(name)
	for _, p := range profiles {
		for _, kw := range p.Keywords {
			if strings.Contains(upper, kw) {
				return p
			}
		}
	}
	return GeneralProfile()
}

// Classify computes the full classification for a record.
//
// An equity is financial-like when its return profile looks like a lender
// (ROCE < 12 with ROE > 15) or its name carries a finance keyword, unless
// the name identifies an auto, power or steel business, which overrides the
// ratio heuristic.
func Classify(rec *domain.AssetRecord) Classification {
	cls := Classification{
		Class:    rec.Class,
		Industry: Detect(rec.Name, rec.Class),
	}
	if rec.Class != domain.AssetClassEquity {
		return cls
	}

	upper := rec.UpperName()
	industrial := containsAny(upper, "MOTORS", "AUTO", "POWER", "ENERGY", "STEEL")
	ratioFinancial := rec.ROCE < 12 && rec.ROE > 15
	nameFinancial := containsAny(upper, "FINANCE", "BANK", "CAPITAL", "HOLDINGS")
	cls.FinancialLike = !industrial && (ratioFinancial || nameFinancial)
	return cls
}

// MetricValue returns the record field a required metric refers to.
func MetricValue(rec *domain.AssetRecord, m Metric) float64 {
	switch m {
	case MetricROE:
		return rec.ROE
	case MetricROCE:
		return rec.ROCE
	case MetricOPM:
		return rec.OPM
	}
	return 0
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
