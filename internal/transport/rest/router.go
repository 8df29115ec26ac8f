package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mindtrack-backend/internal/config"
	"github.com/heartmarshall/mindtrack-backend/internal/transport/middleware"
)

// Handlers groups every REST handler served by the router.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Me        *MeHandler
	Mood      *MoodHandler
	Goal      *GoalHandler
	Gratitude *GratitudeHandler
	Catalog   *CatalogHandler
	Admin     *AdminHandler
}

// RouterDeps carries the cross-cutting pieces of the middleware stack.
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Limiter   *middleware.RateLimiter

	// Authenticate resolves the bearer token into the request identity.
	Authenticate middleware.Middleware
	// RequireAdmin admits confirmed admins only.
	RequireAdmin middleware.Middleware
}

// NewRouter builds the HTTP API.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	authLimit := deps.Limiter.Limit("auth", deps.RateLimit.AuthPerMinute)
	apiLimit := deps.Limiter.Limit("api", deps.RateLimit.APIPerMinute)

	public := middleware.Chain(apiLimit)
	signIn := middleware.Chain(authLimit)
	user := middleware.Chain(apiLimit, deps.Authenticate, middleware.RequireUser)
	admin := middleware.Chain(apiLimit, deps.Authenticate, deps.RequireAdmin)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", signIn(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", signIn(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /auth/refresh", signIn(http.HandlerFunc(h.Auth.Refresh)))
	mux.Handle("POST /auth/logout", user(http.HandlerFunc(h.Auth.Logout)))

	mux.Handle("GET /me", user(http.HandlerFunc(h.Me.Get)))
	mux.Handle("PATCH /me", user(http.HandlerFunc(h.Me.Update)))
	mux.Handle("GET /me/welcome", user(http.HandlerFunc(h.Me.Welcome)))

	mux.Handle("POST /moods", user(http.HandlerFunc(h.Mood.Log)))
	mux.Handle("GET /moods", user(http.HandlerFunc(h.Mood.List)))
	mux.Handle("GET /moods/trend", user(http.HandlerFunc(h.Mood.Trend)))

	mux.Handle("GET /goals", user(http.HandlerFunc(h.Goal.List)))
	mux.Handle("POST /goals", user(http.HandlerFunc(h.Goal.Create)))
	mux.Handle("POST /goals/{id}/complete", user(http.HandlerFunc(h.Goal.Complete)))
	mux.Handle("POST /goals/{id}/progress", user(http.HandlerFunc(h.Goal.Progress)))

	mux.Handle("POST /gratitude", user(http.HandlerFunc(h.Gratitude.Add)))
	mux.Handle("GET /gratitude", user(http.HandlerFunc(h.Gratitude.List)))

	mux.Handle("GET /resources", public(http.HandlerFunc(h.Catalog.Resources)))
	mux.Handle("GET /emergency-contacts", public(http.HandlerFunc(h.Catalog.EmergencyContacts)))
	mux.Handle("GET /goal-suggestions", public(http.HandlerFunc(h.Catalog.GoalSuggestions)))

	mux.Handle("GET /admin/stats", admin(http.HandlerFunc(h.Admin.Stats)))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)(mux)
}
