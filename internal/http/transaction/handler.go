package transaction

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
	r.Get("/", h.list)
}

// list returns the caller's transactions across all statements,
// normalized and annotated with category and recurrence.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	txs, err := h.svc.Transactions(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	annotated := h.engine.Annotate(txs)
	if annotated == nil {
		annotated = []statement.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(annotated); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
