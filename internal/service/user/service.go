package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*domain.User, error)
}

// adminGate resolves the caller's admin flag. It fails closed.
type adminGate interface {
	IsAdmin(ctx context.Context) bool
}

// Service implements profile and welcome operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	gate  adminGate
	loc   *time.Location
	now   func() time.Time
}

// NewService creates a new user service instance. Welcome greetings are
// computed in loc; nil means UTC.
func NewService(logger *slog.Logger, users userRepo, gate adminGate, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		gate:  gate,
		loc:   loc,
		now:   time.Now,
	}
}
