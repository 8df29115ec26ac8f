package admin

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/pkg/ctxutil"
)

const statsFlightKey = "admin_stats"

// Stats returns the anonymous system-wide report. The caller must have been
// confirmed by the admin gate. Concurrent cache misses share one computation.
func (s *Service) Stats(ctx context.Context) (domain.AdminStats, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.AdminStats{}, domain.ErrForbidden
	}

	if st, ok := s.cache.get(s.now()); ok {
		return st, nil
	}

	ch := s.group.DoChan(statsFlightKey, func() (any, error) {
		gen := s.cache.currentGeneration()

		computeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), computeTimeout)
		defer cancel()

		st, err := s.compute(computeCtx)
		if err != nil {
			return nil, err
		}

		if !s.cache.store(st, gen, s.now()) {
			s.log.DebugContext(ctx, "stats superseded, not cached")
		}
		return st, nil
	})

	select {
	case <-ctx.Done():
		return domain.AdminStats{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.AdminStats{}, fmt.Errorf("admin.Stats: %w", res.Err)
		}
		return res.Val.(domain.AdminStats), nil
	}
}

// Invalidate drops cached statistics. Called after every mood write.
func (s *Service) Invalidate() {
	s.cache.invalidate()
}

func (s *Service) compute(ctx context.Context) (domain.AdminStats, error) {
	var (
		users      int
		byCategory map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.users.Count(gctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		users = n
		return nil
	})
	g.Go(func() error {
		m, err := s.moods.CountByCategory(gctx)
		if err != nil {
			return fmt.Errorf("count by category: %w", err)
		}
		byCategory = m
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "stats computation failed", slog.String("error", err.Error()))
		return domain.AdminStats{}, err
	}

	dist := domain.NewMoodDistribution(byCategory)
	return domain.NewAdminStats(users, dist.Total(), dist, s.now().UTC()), nil
}
