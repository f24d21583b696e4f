package evaluation

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the evaluation endpoints on the given router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/evaluate", h.HandleEvaluate)
	r.Get("/evaluate/last-input", h.HandleLastInput)
}
