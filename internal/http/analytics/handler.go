package analytics

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finwell-app/finwell/internal/analytics"
	"github.com/finwell-app/finwell/internal/http/middleware"
	"github.com/finwell-app/finwell/internal/statement"
)

type Handler struct {
	svc    *statement.Service
	engine *analytics.Engine
}

func NewHandler(svc *statement.Service, engine *analytics.Engine) *Handler {
	return &Handler{svc: svc, engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
}

// summary recomputes the full analytics pass over the caller's
// statements. Nothing here is cached: the figures always reflect the
// statement set as stored right now.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sts, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	summary := h.engine.Summarize(sts)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
