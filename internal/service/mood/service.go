// Package mood implements mood logging, listing and the trend series.
package mood

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/config"
	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

// moodRepo defines the mood entry repository interface needed by mood service.
type moodRepo interface {
	Create(ctx context.Context, e domain.MoodEntry) (*domain.MoodEntry, error)
	GetByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*domain.MoodEntry, error)
	ListChronological(ctx context.Context, userID uuid.UUID) ([]domain.MoodEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) ([]domain.MoodEntry, error)
}

// statsInvalidator is notified after every successful mood write.
type statsInvalidator interface {
	Invalidate()
}

// Service implements mood operations.
type Service struct {
	log   *slog.Logger
	moods moodRepo
	stats statsInvalidator
	cfg   config.MoodConfig
	now   func() time.Time
}

// NewService creates a new mood service instance.
func NewService(logger *slog.Logger, moods moodRepo, stats statsInvalidator, cfg config.MoodConfig) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		log:   logger.With("service", "mood"),
		moods: moods,
		stats: stats,
		cfg:   cfg,
		now:   time.Now,
	}
}
