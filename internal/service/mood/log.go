package mood

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/pkg/ctxutil"
)

// LogMood records one mood entry for the caller and returns the persisted row.
// With an idempotency key, a repeated submit returns the original entry and
// created is false; nothing is written.
func (s *Service) LogMood(ctx context.Context, input LogMoodInput) (entry *domain.MoodEntry, created bool, err error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, false, domain.ErrUnauthorized
	}

	input.Note = strings.TrimSpace(input.Note)
	input.IdempotencyKey = strings.TrimSpace(input.IdempotencyKey)

	category, err := input.Validate(s.cfg.NoteMaxLength)
	if err != nil {
		return nil, false, err
	}

	var key *string
	if input.IdempotencyKey != "" {
		key = &input.IdempotencyKey

		existing, err := s.moods.GetByIdempotencyKey(ctx, userID, *key)
		switch {
		case err == nil:
			return existing, false, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, false, fmt.Errorf("mood.LogMood lookup key: %w", err)
		}
	}

	entry, err = s.moods.Create(ctx, domain.MoodEntry{
		ID:             uuid.New(),
		UserID:         userID,
		Mood:           category,
		Note:           input.Note,
		IdempotencyKey: key,
		CreatedAt:      s.now().UTC(),
	})
	if err != nil {
		// A concurrent submit with the same key won the insert.
		if key != nil && errors.Is(err, domain.ErrAlreadyExists) {
			existing, getErr := s.moods.GetByIdempotencyKey(ctx, userID, *key)
			if getErr != nil {
				return nil, false, fmt.Errorf("mood.LogMood lookup key: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("mood.LogMood: %w", err)
	}

	if s.stats != nil {
		s.stats.Invalidate()
	}

	s.log.InfoContext(ctx, "mood logged",
		slog.String("user_id", userID.String()),
		slog.String("mood", category.String()))

	return entry, true, nil
}
