package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mindtrack-backend/internal/adapter/catalog"
	"github.com/heartmarshall/mindtrack-backend/internal/adapter/email"
	"github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres"
	goalrepo "github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres/goal"
	gratituderepo "github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres/gratitude"
	moodrepo "github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres/mood"
	"github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/mindtrack-backend/internal/auth"
	"github.com/heartmarshall/mindtrack-backend/internal/config"
	"github.com/heartmarshall/mindtrack-backend/internal/service/admin"
	authsvc "github.com/heartmarshall/mindtrack-backend/internal/service/auth"
	"github.com/heartmarshall/mindtrack-backend/internal/service/goal"
	"github.com/heartmarshall/mindtrack-backend/internal/service/gratitude"
	"github.com/heartmarshall/mindtrack-backend/internal/service/mood"
	"github.com/heartmarshall/mindtrack-backend/internal/service/user"
	"github.com/heartmarshall/mindtrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/mindtrack-backend/internal/transport/rest"
)

const emailHTTPTimeout = 10 * time.Second

// container holds the wired services and the HTTP pieces built from them.
type container struct {
	logger  *slog.Logger
	pool    *pgxpool.Pool
	limiter *middleware.RateLimiter

	auth      *authsvc.Service
	admin     *admin.Service
	user      *user.Service
	mood      *mood.Service
	goal      *goal.Service
	gratitude *gratitude.Service
	catalog   *catalog.Catalog
}

func newContainer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*container, error) {
	users := userrepo.New(pool)
	tokens := token.New(pool)
	moods := moodrepo.New(pool)
	goals := goalrepo.New(pool)
	entries := gratituderepo.New(pool)
	txm := postgres.NewTxManager(pool)

	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	var sender email.Sender
	if cfg.Email.Enabled {
		sender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.From,
			&http.Client{Timeout: emailHTTPTimeout}, logger)
	} else {
		sender = email.NewNoopSender(logger)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	adminSvc := admin.NewService(logger, users, users, moods, cfg.Admin.StatsCacheTTL)

	c := &container{
		logger:    logger,
		pool:      pool,
		limiter:   middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval),
		auth:      authsvc.NewService(logger, users, tokens, txm, jwtManager, email.NewWelcomeMailer(sender), cfg.Auth),
		admin:     adminSvc,
		user:      user.NewService(logger, users, adminSvc, cfg.Mood.Location),
		mood:      mood.NewService(logger, moods, adminSvc, cfg.Mood),
		goal:      goal.NewService(logger, goals),
		gratitude: gratitude.NewService(logger, entries),
		catalog:   cat,
	}

	logger.Info("services wired",
		slog.String("email_sender", fmt.Sprintf("%T", sender)),
		slog.Int("resources", len(cat.Resources())),
	)

	return c, nil
}

func (c *container) router(cfg *config.Config) http.Handler {
	handlers := rest.Handlers{
		Health:    rest.NewHealthHandler(c.pool, BuildVersion()),
		Auth:      rest.NewAuthHandler(c.auth, c.logger),
		Me:        rest.NewMeHandler(c.user, c.logger),
		Mood:      rest.NewMoodHandler(c.mood, c.logger),
		Goal:      rest.NewGoalHandler(c.goal, c.logger),
		Gratitude: rest.NewGratitudeHandler(c.gratitude, c.logger),
		Catalog:   rest.NewCatalogHandler(c.catalog),
		Admin:     rest.NewAdminHandler(c.admin, c.logger),
	}

	return rest.NewRouter(handlers, rest.RouterDeps{
		Logger:       c.logger,
		CORS:         cfg.CORS,
		RateLimit:    cfg.RateLimit,
		Limiter:      c.limiter,
		Authenticate: middleware.Auth(c.auth),
		RequireAdmin: middleware.RequireAdmin(c.admin),
	})
}

// NewHandler wires the HTTP API over an existing pool. The returned stop
// func releases the rate limiter.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	c, err := newContainer(cfg, pool, logger)
	if err != nil {
		return nil, nil, err
	}
	return c.router(cfg), c.limiter.Stop, nil
}
