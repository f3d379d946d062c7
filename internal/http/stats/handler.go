package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/mydays/internal/http/api"
	"github.com/MrJamesThe3rd/mydays/internal/summary"
)

type Handler struct {
	summary *summary.Service
}

func NewHandler(summarySvc *summary.Service) *Handler {
	return &Handler{summary: summarySvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/stats", h.business)
	r.Get("/diagnostics", h.diagnostics)
}

func (h *Handler) business(w http.ResponseWriter, r *http.Request) {
	rng, err := api.DateRange(r)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	stats, err := h.summary.BusinessStats(r.Context(), rng)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, api.ToStats(stats))
}

func (h *Handler) diagnostics(w http.ResponseWriter, r *http.Request) {
	diags, err := h.summary.Diagnostics(r.Context())
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, api.ToDiagnostics(diags))
}
