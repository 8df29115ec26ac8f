package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	Welcome(ctx context.Context) (domain.Welcome, error)
}

// MeHandler serves the caller's own profile.
type MeHandler struct {
	responder
	svc userService
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(svc userService, logger *slog.Logger) *MeHandler {
	return &MeHandler{svc: svc, responder: responder{log: logger.With("handler", "me")}}
}

type updateMeRequest struct {
	DisplayName string `json:"displayName"`
}

type welcomeResponse struct {
	Greeting  string `json:"greeting"`
	FirstName string `json:"firstName"`
	Message   string `json:"message"`
	Quote     string `json:"quote"`
}

// Get handles GET /me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /me.
func (h *MeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateMeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	u, err := h.svc.UpdateDisplayName(r.Context(), user.UpdateProfileInput{DisplayName: req.DisplayName})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Welcome handles GET /me/welcome.
func (h *MeHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	wl, err := h.svc.Welcome(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, welcomeResponse{
		Greeting:  wl.Greeting,
		FirstName: wl.FirstName,
		Message:   wl.Greeting + ", " + wl.FirstName,
		Quote:     wl.Quote,
	})
}
