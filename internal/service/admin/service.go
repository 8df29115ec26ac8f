// Package admin implements the admin gate and the system-wide statistics
// report.
package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// adminReader reads the is_admin flag of a user.
type adminReader interface {
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}

// userCounter counts registered users.
type userCounter interface {
	Count(ctx context.Context) (int, error)
}

// moodCounter provides the server-side mood aggregate. The entry total is
// derived from it so the two always agree.
type moodCounter interface {
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// computeTimeout bounds one statistics computation. The computation runs
// detached from the request that started it.
const computeTimeout = 10 * time.Second

// Service gates admin access and serves cached statistics.
type Service struct {
	log    *slog.Logger
	admins adminReader
	users  userCounter
	moods  moodCounter
	cache  *statsCache
	group  singleflight.Group
	now    func() time.Time
}

// NewService creates a new admin service. Statistics are cached for ttl.
func NewService(
	logger *slog.Logger,
	admins adminReader,
	users userCounter,
	moods moodCounter,
	ttl time.Duration,
) *Service {
	return &Service{
		log:    logger.With("service", "admin"),
		admins: admins,
		users:  users,
		moods:  moods,
		cache:  newStatsCache(ttl),
		now:    time.Now,
	}
}
