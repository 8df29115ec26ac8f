// Command promote grants or revokes the admin flag of a user by email.
// It is the only way to create an admin; no HTTP route changes the flag.
//
// Usage:
//
//	promote grant  --email=user@example.com
//	promote revoke --email=user@example.com
//
// The database is taken from --dsn or the DATABASE_DSN environment variable.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/mindtrack-backend/internal/config"
	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

type globals struct {
	DSN     string        `help:"PostgreSQL connection string." env:"DATABASE_DSN" required:""`
	Timeout time.Duration `help:"Overall timeout." default:"30s"`
}

type grantCmd struct {
	Email string `help:"Email of the user to promote." required:""`
}

func (c *grantCmd) Run(g *globals) error { return setAdmin(g, c.Email, true) }

type revokeCmd struct {
	Email string `help:"Email of the user to demote." required:""`
}

func (c *revokeCmd) Run(g *globals) error { return setAdmin(g, c.Email, false) }

var cli struct {
	globals

	Grant  grantCmd  `cmd:"" help:"Grant admin access."`
	Revoke revokeCmd `cmd:"" help:"Revoke admin access."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("promote"),
		kong.Description("Manage MindTrack admin access."),
		kong.UsageOnError(),
	)

	if err := kctx.Run(&cli.globals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setAdmin(g *globals, email string, isAdmin bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), g.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{DSN: g.DSN})
	if err != nil {
		return err
	}
	defer pool.Close()

	email = domain.NormalizeEmail(email)

	u, err := userrepo.New(pool).SetAdmin(ctx, email, isAdmin)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no user with email %q", email)
	}
	if err != nil {
		return fmt.Errorf("update admin flag: %w", err)
	}

	if isAdmin {
		fmt.Printf("User %q (%s) is now an admin.\n", u.Email, u.ID)
	} else {
		fmt.Printf("User %q (%s) is no longer an admin.\n", u.Email, u.ID)
	}
	return nil
}
