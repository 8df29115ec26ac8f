// Package gratitude implements the gratitude journal.
package gratitude

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/pkg/ctxutil"
)

// MaxItemLength is the longest single item, in characters.
const MaxItemLength = 500

type gratitudeRepo interface {
	Create(ctx context.Context, e domain.GratitudeEntry) (*domain.GratitudeEntry, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GratitudeEntry, error)
}

// Service implements gratitude journal operations.
type Service struct {
	log     *slog.Logger
	entries gratitudeRepo
	now     func() time.Time
}

// NewService creates a gratitude service.
func NewService(logger *slog.Logger, entries gratitudeRepo) *Service {
	return &Service{
		log:     logger.With("service", "gratitude"),
		entries: entries,
		now:     time.Now,
	}
}

// Add stores a journal entry. Blank items are dropped; at least one and at
// most MaxGratitudeItems must remain.
func (s *Service) Add(ctx context.Context, items []string) (*domain.GratitudeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cleaned, err := validateItems(items)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.Create(ctx, domain.GratitudeEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Items:     cleaned,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("gratitude.Add: %w", err)
	}

	s.log.InfoContext(ctx, "gratitude entry added",
		slog.String("user_id", userID.String()),
		slog.Int("items", len(cleaned)))

	return entry, nil
}

// ListRecent returns the caller's newest entries first.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.GratitudeEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}

	entries, err := s.entries.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("gratitude.ListRecent: %w", err)
	}
	return entries, nil
}

func validateItems(items []string) ([]string, error) {
	cleaned := domain.CleanGratitudeItems(items)

	switch {
	case len(cleaned) == 0:
		return nil, domain.NewValidationError("items", "at least one item is required")
	case len(cleaned) > domain.MaxGratitudeItems:
		return nil, domain.NewValidationError("items", "at most "+strconv.Itoa(domain.MaxGratitudeItems)+" items")
	}

	// Field names index the submitted list, blanks included.
	var errs []domain.FieldError
	for i, item := range items {
		if utf8.RuneCountInString(strings.TrimSpace(item)) > MaxItemLength {
			errs = append(errs, domain.FieldError{Field: "items[" + strconv.Itoa(i) + "]", Message: "too long"})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return cleaned, nil
}
