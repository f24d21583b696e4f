package portfolio

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/moreshwar/stocky/internal/domain"
)

// Handler handles portfolio HTTP requests
type Handler struct {
	aggregator *Aggregator
	log        zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(aggregator *Aggregator, log zerolog.Logger) *Handler {
	return &Handler{
		aggregator: aggregator,
		log:        log.With().Str("handler", "portfolio").Logger(),
	}
}

// AnalyticsRequest is the body accepted by HandleAnalytics.
type AnalyticsRequest struct {
	Holdings   map[string]domain.Holding `json:"holdings"`
	LivePrices map[string]float64        `json:"live_prices"`
	Records    []domain.AssetRecord      `json:"records"`
}

// HandleAnalytics computes portfolio analytics for a submitted holdings
// snapshot. Nothing is persisted.
// POST /api/portfolio/analytics
func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	var req AnalyticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Holdings) == 0 {
		h.writeError(w, http.StatusBadRequest, "no holdings submitted")
		return
	}

	records := make(map[string]*domain.AssetRecord, len(req.Records))
	for i := range req.Records {
		records[req.Records[i].Symbol] = &req.Records[i]
	}

	analytics := h.aggregator.Aggregate(req.Holdings, req.LivePrices, records)
	h.writeJSON(w, analytics)
}

// RegisterRoutes mounts the portfolio endpoints on the given router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/portfolio", func(r chi.Router) {
		r.Post("/analytics", h.HandleAnalytics)
	})
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
