// Package evaluation runs the full per-asset scoring pipeline: industry
// classification, fundamental scoring with normalization, the moat score,
// the derived classifiers, and the fused verdict with price levels.
package evaluation

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/decision"
	"github.com/moreshwar/stocky/internal/modules/industry"
	"github.com/moreshwar/stocky/internal/modules/scoring"
	"github.com/moreshwar/stocky/internal/modules/signals"
)

// Service orchestrates the scoring pipeline. It is stateless: every call
// recomputes the full report from the supplied record.
type Service struct {
	log zerolog.Logger
}

// New creates a new evaluation service
func New(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "evaluation").Logger(),
	}
}

// EvaluateAsset runs the pipeline for one record. held reflects whether the
// caller's portfolio carries a positive quantity of the asset; it is an
// external input, never derived here.
func (s *Service) EvaluateAsset(rec *domain.AssetRecord, held bool) AssetReport {
	cls := industry.Classify(rec)

	report := AssetReport{
		Symbol:        rec.Symbol,
		Name:          rec.Name,
		Class:         rec.Class,
		Industry:      cls.Industry.Name,
		FinancialLike: cls.FinancialLike,
		Held:          held,
		Timing:        signals.CalculateTiming(rec),
		Confidence:    signals.CalculateDataConfidence(rec),
	}
	if rec.Class == domain.AssetClassEquity {
		report.Trajectory = signals.CalculateTrajectory(rec)
		report.FundamentalTiming = signals.CalculateFundamentalTiming(rec)
	}

	if rec.Price <= 0 {
		s.log.Debug().Str("symbol", rec.Symbol).Msg("Non-positive price, asset is unscoreable")
		return report
	}

	raw := scoring.ScoreFundamentals(rec, cls)
	if raw == nil {
		s.log.Debug().Str("symbol", rec.Symbol).Msg("Insufficient data to score, no verdict")
		return report
	}

	normalized := scoring.Normalize(*raw, rec, cls)
	report.Fundamental = &normalized
	report.Porter = scoring.ScorePorter(rec)
	report.Scoreable = true

	// Boost the normalized total with the momentum bonuses, then squash
	// (funds/ETFs) or clamp (equities) into the display range.
	report.TrajectoryBonus = signals.CalculateTrajectoryBonus(rec)
	report.RelativeStrength = signals.CalculateRelativeStrength(rec, cls)
	boosted := normalized.Total + report.TrajectoryBonus + report.RelativeStrength
	if rec.Class.IsFundLike() {
		report.Composite = scoring.Squash(boosted)
	} else {
		report.Composite = scoring.ClampTotal(boosted)
	}

	report.Conviction = signals.CalculateConviction(report.Composite, report.Porter)

	verdict := decision.Decide(
		report.Conviction,
		report.Trajectory,
		decision.TimingSignal(report.Timing),
		rec.Class,
		held,
	)
	report.Decision = &verdict
	report.Narrative = decision.Narrative(report.Composite, report.FundamentalTiming, held)

	levels := decision.CalculateLevels(rec.Price, report.Composite, report.Porter, held)
	report.Levels = &levels

	s.log.Debug().
		Str("symbol", rec.Symbol).
		Int("composite", report.Composite).
		Str("conviction", string(report.Conviction)).
		Str("action", string(verdict.Action)).
		Msg("Evaluated asset")

	return report
}

// EvaluateBatch evaluates all records, using the holdings snapshot to mark
// held assets. Reports come back ordered by symbol for stable output.
func (s *Service) EvaluateBatch(records []domain.AssetRecord, holdings map[string]domain.Holding) []AssetReport {
	reports := make([]AssetReport, 0, len(records))
	for i := range records {
		rec := &records[i]
		held := false
		if h, ok := holdings[rec.Symbol]; ok && h.Quantity > 0 {
			held = true
		}
		reports = append(reports, s.EvaluateAsset(rec, held))
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Symbol < reports[j].Symbol
	})
	return reports
}
