package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

type statsService interface {
	Stats(ctx context.Context) (domain.AdminStats, error)
}

// AdminHandler serves admin endpoints. Routes are wrapped in
// middleware.RequireAdmin.
type AdminHandler struct {
	responder
	stats statsService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(stats statsService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{stats: stats, responder: responder{log: logger.With("handler", "admin")}}
}

type statsResponse struct {
	TotalUsers            int            `json:"totalUsers"`
	TotalMoodEntries      int            `json:"totalMoodEntries"`
	MoodDistribution      map[string]int `json:"moodDistribution"`
	AverageEntriesPerUser float64        `json:"averageEntriesPerUser"`
	GeneratedAt           time.Time      `json:"generatedAt"`
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.Stats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	dist := make(map[string]int, len(st.MoodDistribution))
	for c, n := range st.MoodDistribution {
		dist[c.String()] = n
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalUsers:            st.TotalUsers,
		TotalMoodEntries:      st.TotalMoodEntries,
		MoodDistribution:      dist,
		AverageEntriesPerUser: st.AverageEntriesPerUser,
		GeneratedAt:           st.GeneratedAt,
	})
}
