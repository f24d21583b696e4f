package snapshots

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles snapshot HTTP requests
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new snapshots handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "snapshots").Logger(),
	}
}

// HandleList returns recent snapshot summaries, newest first.
// GET /api/snapshots?limit=N
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	summaries, err := h.repo.List(limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summaries == nil {
		summaries = []SnapshotSummary{}
	}
	h.writeJSON(w, summaries)
}

// HandleGet returns one snapshot with its full reports.
// GET /api/snapshots/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snapshot, err := h.repo.Get(id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if snapshot == nil {
		h.writeError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	h.writeJSON(w, snapshot)
}

// HandleLatest returns the most recent snapshot with its full reports.
// GET /api/snapshots/latest
func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.repo.Latest()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if snapshot == nil {
		h.writeError(w, http.StatusNotFound, "no snapshots stored yet")
		return
	}
	h.writeJSON(w, snapshot)
}

// RegisterRoutes mounts the snapshot endpoints on the given router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/snapshots", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Get("/latest", h.HandleLatest)
		r.Get("/{id}", h.HandleGet)
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
