package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/mindtrack-backend/pkg/ctxutil"
)

type adminGate interface {
	IsAdmin(ctx context.Context) bool
}

// RequireAdmin admits only callers the gate confirms as admin and records
// the decision in the request context. Anonymous callers get 401, everyone
// else 403.
func RequireAdmin(gate adminGate) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !gate.IsAdmin(r.Context()) {
				writeError(w, http.StatusForbidden, "admin access required")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithAdmin(r.Context(), true)))
		})
	}
}
