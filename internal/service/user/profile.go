package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user with IsAdmin resolved by the
// admin gate. Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	user.IsAdmin = s.gate.IsAdmin(ctx)
	return user, nil
}

// UpdateDisplayName sets the authenticated user's display name.
func (s *Service) UpdateDisplayName(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	input.DisplayName = domain.CollapseSpaces(input.DisplayName)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateDisplayName(ctx, userID, input.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateDisplayName: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	user.IsAdmin = s.gate.IsAdmin(ctx)
	return user, nil
}
