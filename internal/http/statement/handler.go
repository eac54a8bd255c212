package statement

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finwell-app/finwell/internal/extract"
	"github.com/finwell-app/finwell/internal/http/middleware"
	"github.com/finwell-app/finwell/internal/parser"
	"github.com/finwell-app/finwell/internal/statement"
)

type Handler struct {
	svc            *statement.Service
	parser         *parser.Parser
	maxUploadBytes int64
	extractTimeout time.Duration
}

func NewHandler(svc *statement.Service, p *parser.Parser, maxUploadBytes int64, extractTimeout time.Duration) *Handler {
	return &Handler{
		svc:            svc,
		parser:         p,
		maxUploadBytes: maxUploadBytes,
		extractTimeout: extractTimeout,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

// upload runs the full ingestion pipeline: extract text from the
// uploaded file, parse it, persist the assembled statement as one
// write. Extraction and storage failures surface to the caller; a
// statement that parsed to nothing is still created, and the response
// lets the client decide how to present an empty result.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.extractTimeout)
	defer cancel()

	text, err := extract.Text(ctx, header.Filename, file, header.Size)
	if err != nil {
		slog.Error("text extraction failed", "filename", header.Filename, "error", err)
		http.Error(w, "could not extract text from statement", http.StatusUnprocessableEntity)

		return
	}

	params := h.parser.Parse(text)
	params.UserID = userID
	params.Filename = header.Filename

	st, err := h.svc.Create(r.Context(), params)
	if err != nil {
		http.Error(w, "failed to store statement", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(sts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	st, err := h.svc.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, statement.ErrNotFound) {
			http.Error(w, "statement not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
