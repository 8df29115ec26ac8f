package mood

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/pkg/ctxutil"
)

// List returns a newest-first page of the caller's entries.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.MoodEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.moods.List(ctx, userID, domain.MoodEntryFilter{
		From:  input.From,
		To:    input.To,
		Limit: input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("mood.List: %w", err)
	}

	return entries, nil
}

// Trend returns the caller's full mood history as a chronological series.
// A user without entries gets empty series, not an error.
func (s *Service) Trend(ctx context.Context) (domain.MoodTrend, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.MoodTrend{}, domain.ErrUnauthorized
	}

	entries, err := s.moods.ListChronological(ctx, userID)
	if err != nil {
		return domain.MoodTrend{}, fmt.Errorf("mood.Trend: %w", err)
	}

	return domain.BuildMoodTrend(entries, s.cfg.Location), nil
}
