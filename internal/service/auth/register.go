package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

// Register creates a user with email + password and signs them in.
// Returns ErrAlreadyExists if the email is already taken. The welcome
// email is best effort and never fails registration.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.DisplayName = domain.CollapseSpaces(input.DisplayName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Email uniqueness is enforced by the users_email_key constraint.
	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC()
		user, err := s.users.Create(txCtx, domain.User{
			ID:          uuid.New(),
			Email:       input.Email,
			DisplayName: input.DisplayName,
			CreatedAt:   now,
			UpdatedAt:   now,
		}, string(hash))
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", result.User.ID.String()))
	s.sendWelcome(ctx, *result.User)

	return result, nil
}

func (s *Service) sendWelcome(ctx context.Context, u domain.User) {
	if s.mailer == nil {
		return
	}

	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mailTimeout)
	defer cancel()

	if err := s.mailer.SendWelcome(mailCtx, u); err != nil {
		s.log.WarnContext(ctx, "welcome email failed",
			slog.String("user_id", u.ID.String()),
			slog.String("error", err.Error()))
	}
}
