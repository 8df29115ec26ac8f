package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be > 0")
	}
	if c.Auth.TokenCleanupInterval < 0 {
		return fmt.Errorf("auth.token_cleanup_interval must be >= 0")
	}

	if c.Email.Enabled {
		if c.Email.ResendAPIKey == "" {
			return fmt.Errorf("email.resend_api_key is required when email is enabled")
		}
		if c.Email.From == "" {
			return fmt.Errorf("email.from is required when email is enabled")
		}
	}

	if err := c.Mood.validate(); err != nil {
		return fmt.Errorf("mood: %w", err)
	}

	if c.Admin.StatsCacheTTL <= 0 {
		return fmt.Errorf("admin.stats_cache_ttl must be > 0 (got %v)", c.Admin.StatsCacheTTL)
	}

	if c.RateLimit.AuthPerMinute < 0 || c.RateLimit.APIPerMinute < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}

	return nil
}

func (m *MoodConfig) validate() error {
	if m.NoteMaxLength <= 0 {
		return fmt.Errorf("note_max_length must be > 0 (got %d)", m.NoteMaxLength)
	}

	loc, err := time.LoadLocation(m.TrendTimezone)
	if err != nil {
		return fmt.Errorf("trend_timezone %q: %w", m.TrendTimezone, err)
	}
	m.Location = loc

	return nil
}
