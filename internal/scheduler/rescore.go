package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/moreshwar/stocky/internal/domain"
	"github.com/moreshwar/stocky/internal/modules/evaluation"
	"github.com/moreshwar/stocky/internal/modules/portfolio"
	"github.com/moreshwar/stocky/internal/modules/snapshots"
)

// RescoreJob re-runs the scoring pipeline over the last submitted universe
// and stores the result as a snapshot. It is a no-op until a batch has
// been submitted through the API.
type RescoreJob struct {
	inputs     *evaluation.InputStore
	evaluator  *evaluation.Service
	aggregator *portfolio.Aggregator
	repo       *snapshots.Repository
	log        zerolog.Logger
}

// NewRescoreJob creates the periodic re-evaluation job
func NewRescoreJob(
	inputs *evaluation.InputStore,
	evaluator *evaluation.Service,
	aggregator *portfolio.Aggregator,
	repo *snapshots.Repository,
	log zerolog.Logger,
) *RescoreJob {
	return &RescoreJob{
		inputs:     inputs,
		evaluator:  evaluator,
		aggregator: aggregator,
		repo:       repo,
		log:        log.With().Str("job", "rescore").Logger(),
	}
}

// Name returns the job name
func (j *RescoreJob) Name() string {
	return "rescore"
}

// Run re-evaluates the latest batch and persists a snapshot
func (j *RescoreJob) Run() error {
	input := j.inputs.Latest()
	if input == nil {
		j.log.Debug().Msg("No batch submitted yet, skipping rescore")
		return nil
	}

	reports := j.evaluator.EvaluateBatch(input.Records, input.Holdings)

	var analytics *portfolio.Analytics
	if len(input.Holdings) > 0 {
		a := j.aggregator.Aggregate(input.Holdings, input.LivePrices, recordIndex(input.Records))
		analytics = &a
	}

	id, err := j.repo.Save(reports, analytics)
	if err != nil {
		return err
	}

	j.log.Info().
		Str("snapshot_id", id).
		Int("assets", len(reports)).
		Msg("Rescore cycle completed")
	return nil
}

func recordIndex(records []domain.AssetRecord) map[string]*domain.AssetRecord {
	index := make(map[string]*domain.AssetRecord, len(records))
	for i := range records {
		index[records[i].Symbol] = &records[i]
	}
	return index
}
