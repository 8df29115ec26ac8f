// Package goal implements self-care goal management.
package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

// goalRepo defines the goal repository interface needed by goal service.
type goalRepo interface {
	Create(ctx context.Context, g domain.SelfCareGoal) (*domain.SelfCareGoal, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]domain.SelfCareGoal, error)
	Complete(ctx context.Context, userID, goalID uuid.UUID, at time.Time) (*domain.SelfCareGoal, error)
	AddProgress(ctx context.Context, userID, goalID uuid.UUID, amount float64) (*domain.SelfCareGoal, error)
}

// Service implements goal operations.
type Service struct {
	log   *slog.Logger
	goals goalRepo
	now   func() time.Time
}

// NewService creates a new goal service instance.
func NewService(logger *slog.Logger, goals goalRepo) *Service {
	return &Service{
		log:   logger.With("service", "goal"),
		goals: goals,
		now:   time.Now,
	}
}
