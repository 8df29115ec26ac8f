package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

type gratitudeService interface {
	Add(ctx context.Context, items []string) (*domain.GratitudeEntry, error)
	ListRecent(ctx context.Context, limit int) ([]domain.GratitudeEntry, error)
}

// GratitudeHandler serves the gratitude journal.
type GratitudeHandler struct {
	responder
	svc gratitudeService
}

// NewGratitudeHandler creates a GratitudeHandler.
func NewGratitudeHandler(svc gratitudeService, logger *slog.Logger) *GratitudeHandler {
	return &GratitudeHandler{svc: svc, responder: responder{log: logger.With("handler", "gratitude")}}
}

type addGratitudeRequest struct {
	Items []string `json:"items"`
}

type gratitudeResponse struct {
	ID        string    `json:"id"`
	Items     []string  `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}

// Add handles POST /gratitude.
func (h *GratitudeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addGratitudeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	e, err := h.svc.Add(r.Context(), req.Items)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGratitudeResponse(*e))
}

// List handles GET /gratitude?limit=.
func (h *GratitudeHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	entries, err := h.svc.ListRecent(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]gratitudeResponse, len(entries))
	for i, e := range entries {
		resp[i] = toGratitudeResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func toGratitudeResponse(e domain.GratitudeEntry) gratitudeResponse {
	return gratitudeResponse{ID: e.ID.String(), Items: e.Items, CreatedAt: e.CreatedAt}
}
