package admin

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/mindtrack-backend/pkg/ctxutil"
)

// IsAdmin reports whether the caller in ctx holds the admin flag. It fails
// closed: no identity, a missing user or any read error all mean false.
// Read errors are logged at warn level and never returned.
func (s *Service) IsAdmin(ctx context.Context) bool {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false
	}

	isAdmin, err := s.admins.IsAdmin(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "admin check failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return false
	}

	return isAdmin
}
