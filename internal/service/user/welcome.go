package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/pkg/ctxutil"
)

// Welcome builds the dashboard banner for the authenticated user using the
// current time in the service location.
func (s *Service) Welcome(ctx context.Context) (domain.Welcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Welcome{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.Welcome{}, fmt.Errorf("user.Welcome: %w", err)
	}

	return domain.NewWelcome(*user, s.now().In(s.loc)), nil
}
