package evaluation

import (
	"sync"
	"time"

	"github.com/moreshwar/stocky/internal/domain"
)

// BatchInput is one submitted universe: the records to score plus the
// holdings and live prices that accompany them.
type BatchInput struct {
	Records    []domain.AssetRecord      `json:"records"`
	Holdings   map[string]domain.Holding `json:"holdings,omitempty"`
	LivePrices map[string]float64        `json:"live_prices,omitempty"`
	ReceivedAt time.Time                 `json:"received_at"`
}

// InputStore keeps the most recently submitted batch so the periodic
// re-evaluation job can refresh scores without a new submission.
type InputStore struct {
	mu    sync.RWMutex
	input *BatchInput
}

// NewInputStore creates an empty input store
func NewInputStore() *InputStore {
	return &InputStore{}
}

// Set replaces the stored batch
func (s *InputStore) Set(input BatchInput) {
	input.ReceivedAt = time.Now()
	s.mu.Lock()
	s.input = &input
	s.mu.Unlock()
}

// Latest returns a copy of the stored batch, or nil when nothing has been
// submitted yet.
func (s *InputStore) Latest() *BatchInput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.input == nil {
		return nil
	}
	cp := *s.input
	cp.Records = append([]domain.AssetRecord(nil), s.input.Records...)
	return &cp
}

// indexRecords maps records by symbol for the aggregator.
func indexRecords(records []domain.AssetRecord) map[string]*domain.AssetRecord {
	index := make(map[string]*domain.AssetRecord, len(records))
	for i := range records {
		index[records[i].Symbol] = &records[i]
	}
	return index
}
