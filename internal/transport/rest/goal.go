package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/internal/service/goal"
)

type goalService interface {
	ListActive(ctx context.Context) ([]domain.SelfCareGoal, error)
	Create(ctx context.Context, input goal.CreateGoalInput) (*domain.SelfCareGoal, error)
	Complete(ctx context.Context, input goal.CompleteGoalInput) ([]domain.SelfCareGoal, error)
	RecordProgress(ctx context.Context, input goal.ProgressInput) (*domain.SelfCareGoal, error)
}

// GoalHandler serves self-care goal endpoints.
type GoalHandler struct {
	responder
	svc goalService
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(svc goalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{svc: svc, responder: responder{log: logger.With("handler", "goal")}}
}

type createGoalRequest struct {
	GoalType     string   `json:"goalType"`
	Frequency    string   `json:"frequency"`
	TargetDate   string   `json:"targetDate"`
	TargetAmount *float64 `json:"targetAmount"`
	Unit         *string  `json:"unit"`
}

type completeGoalRequest struct {
	Confirm bool `json:"confirm"`
}

type progressRequest struct {
	Amount float64 `json:"amount"`
}

type goalResponse struct {
	ID              string     `json:"id"`
	GoalType        string     `json:"goalType"`
	Frequency       string     `json:"frequency"`
	TargetDate      string     `json:"targetDate"`
	Status          string     `json:"status"`
	TargetAmount    *float64   `json:"targetAmount,omitempty"`
	CurrentAmount   float64    `json:"currentAmount"`
	Unit            *string    `json:"unit,omitempty"`
	ProgressPercent float64    `json:"progressPercent"`
	CreatedAt       time.Time  `json:"createdAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

// List handles GET /goals.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.ListActive(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponses(goals))
}

// Create handles POST /goals.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	g, err := h.svc.Create(r.Context(), goal.CreateGoalInput{
		GoalType:     req.GoalType,
		Frequency:    req.Frequency,
		TargetDate:   req.TargetDate,
		TargetAmount: req.TargetAmount,
		Unit:         req.Unit,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalResponse(*g))
}

// Complete handles POST /goals/{id}/complete and answers with the remaining
// active goals.
func (h *GoalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req completeGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	active, err := h.svc.Complete(r.Context(), goal.CompleteGoalInput{GoalID: id, Confirm: req.Confirm})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponses(active))
}

// Progress handles POST /goals/{id}/progress.
func (h *GoalHandler) Progress(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req progressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	g, err := h.svc.RecordProgress(r.Context(), goal.ProgressInput{GoalID: id, Amount: req.Amount})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(*g))
}

func (h *GoalHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func toGoalResponses(goals []domain.SelfCareGoal) []goalResponse {
	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toGoalResponse(g)
	}
	return resp
}

func toGoalResponse(g domain.SelfCareGoal) goalResponse {
	return goalResponse{
		ID:              g.ID.String(),
		GoalType:        g.GoalType,
		Frequency:       g.Frequency.String(),
		TargetDate:      g.TargetDate.Format(domain.GoalDateLayout),
		Status:          g.Status.String(),
		TargetAmount:    g.TargetAmount,
		CurrentAmount:   g.CurrentAmount,
		Unit:            g.Unit,
		ProgressPercent: g.ProgressPercent(),
		CreatedAt:       g.CreatedAt,
		CompletedAt:     g.CompletedAt,
	}
}
