package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/internal/service/mood"
)

// IdempotencyKeyHeader lets a client make POST /moods safe to retry.
const IdempotencyKeyHeader = "Idempotency-Key"

type moodService interface {
	LogMood(ctx context.Context, input mood.LogMoodInput) (*domain.MoodEntry, bool, error)
	List(ctx context.Context, input mood.ListInput) ([]domain.MoodEntry, error)
	Trend(ctx context.Context) (domain.MoodTrend, error)
}

// MoodHandler serves mood logging and trend endpoints.
type MoodHandler struct {
	responder
	svc moodService
}

// NewMoodHandler creates a MoodHandler.
func NewMoodHandler(svc moodService, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{svc: svc, responder: responder{log: logger.With("handler", "mood")}}
}

type logMoodRequest struct {
	Mood           string `json:"mood"`
	Note           string `json:"note"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type moodEntryResponse struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Score     int       `json:"score"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

type trendPointResponse struct {
	Label string    `json:"label"`
	Score int       `json:"score"`
	Mood  string    `json:"mood"`
	At    time.Time `json:"at"`
}

type trendResponse struct {
	Labels []string             `json:"labels"`
	Scores []int                `json:"scores"`
	Points []trendPointResponse `json:"points"`
}

// Log handles POST /moods. The idempotency key comes from the
// Idempotency-Key header, or the body when the header is absent. A replay of
// a known key answers 200 with the original entry instead of 201.
func (h *MoodHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req logMoodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
	if key == "" {
		key = req.IdempotencyKey
	}

	entry, created, err := h.svc.LogMood(r.Context(), mood.LogMoodInput{
		Mood:           req.Mood,
		Note:           req.Note,
		IdempotencyKey: key,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	writeJSON(w, status, toMoodEntryResponse(*entry))
}

// List handles GET /moods?from=&to=&limit=. Bounds are RFC 3339 timestamps;
// from is inclusive and to exclusive.
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		input mood.ListInput
		errs  []domain.FieldError
	)

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"from", &input.From}, {"to", &input.To}} {
		v := r.URL.Query().Get(p.name)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "must be an RFC 3339 timestamp"})
			continue
		}
		*p.dst = &t
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		errs = append(errs, domain.FieldErrors(err)...)
	}
	input.Limit = limit

	if len(errs) > 0 {
		h.handleError(w, r, domain.NewValidationErrors(errs))
		return
	}

	entries, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]moodEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toMoodEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Trend handles GET /moods/trend.
func (h *MoodHandler) Trend(w http.ResponseWriter, r *http.Request) {
	trend, err := h.svc.Trend(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := trendResponse{
		Labels: trend.Labels,
		Scores: trend.Scores,
		Points: make([]trendPointResponse, len(trend.Points)),
	}
	for i, p := range trend.Points {
		resp.Points[i] = trendPointResponse{Label: p.Label, Score: p.Score, Mood: p.Mood.String(), At: p.At}
	}
	writeJSON(w, http.StatusOK, resp)
}

func toMoodEntryResponse(e domain.MoodEntry) moodEntryResponse {
	return moodEntryResponse{
		ID:        e.ID.String(),
		Mood:      e.Mood.String(),
		Score:     e.Mood.Score(),
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}
