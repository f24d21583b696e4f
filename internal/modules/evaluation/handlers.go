package evaluation

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/moreshwar/stocky/internal/modules/portfolio"
)

// SnapshotSaver persists an evaluation run and returns its ID.
type SnapshotSaver interface {
	Save(reports []AssetReport, analytics *portfolio.Analytics) (string, error)
}

// Handler handles evaluation HTTP requests
type Handler struct {
	service    *Service
	aggregator *portfolio.Aggregator
	saver      SnapshotSaver
	inputs     *InputStore
	log        zerolog.Logger
}

// NewHandler creates a new evaluation handler
func NewHandler(
	service *Service,
	aggregator *portfolio.Aggregator,
	saver SnapshotSaver,
	inputs *InputStore,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		service:    service,
		aggregator: aggregator,
		saver:      saver,
		inputs:     inputs,
		log:        log.With().Str("handler", "evaluation").Logger(),
	}
}

// EvaluateResponse is the body returned by HandleEvaluate.
type EvaluateResponse struct {
	Reports    []AssetReport        `json:"reports"`
	Analytics  *portfolio.Analytics `json:"analytics,omitempty"`
	SnapshotID string               `json:"snapshot_id,omitempty"`
}

// HandleEvaluate scores a submitted batch of records, aggregates portfolio
// analytics when holdings are present, and persists the run as a snapshot.
// POST /api/evaluate
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var input BatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(input.Records) == 0 {
		h.writeError(w, http.StatusBadRequest, "no records submitted")
		return
	}

	h.inputs.Set(input)

	reports := h.service.EvaluateBatch(input.Records, input.Holdings)

	resp := EvaluateResponse{Reports: reports}
	if len(input.Holdings) > 0 {
		analytics := h.aggregator.Aggregate(input.Holdings, input.LivePrices, indexRecords(input.Records))
		resp.Analytics = &analytics
	}

	if h.saver != nil {
		id, err := h.saver.Save(reports, resp.Analytics)
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to persist snapshot")
		} else {
			resp.SnapshotID = id
		}
	}

	h.writeJSON(w, resp)
}

// HandleLastInput returns the last submitted batch, without re-evaluating.
// GET /api/evaluate/last-input
func (h *Handler) HandleLastInput(w http.ResponseWriter, r *http.Request) {
	input := h.inputs.Latest()
	if input == nil {
		h.writeError(w, http.StatusNotFound, "no batch submitted yet")
		return
	}
	h.writeJSON(w, input)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
