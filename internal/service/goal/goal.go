package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
	"github.com/heartmarshall/mindtrack-backend/pkg/ctxutil"
)

// ListActive returns the caller's Active goals in creation order.
func (s *Service) ListActive(ctx context.Context) ([]domain.SelfCareGoal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	goals, err := s.goals.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("goal.ListActive: %w", err)
	}
	return goals, nil
}

// Create persists a new Active goal for the caller. Frequency defaults to Daily.
func (s *Service) Create(ctx context.Context, input CreateGoalInput) (*domain.SelfCareGoal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.GoalType = domain.CollapseSpaces(input.GoalType)
	input.TargetDate = strings.TrimSpace(input.TargetDate)
	if input.Unit != nil {
		unit := domain.CollapseSpaces(*input.Unit)
		input.Unit = &unit
		if unit == "" {
			input.Unit = nil
		}
	}

	v, err := input.Validate()
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.Create(ctx, domain.SelfCareGoal{
		ID:           uuid.New(),
		UserID:       userID,
		GoalType:     input.GoalType,
		Frequency:    v.frequency,
		TargetDate:   v.targetDate,
		Status:       domain.GoalStatusActive,
		TargetAmount: input.TargetAmount,
		Unit:         input.Unit,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("goal.Create: %w", err)
	}

	s.log.InfoContext(ctx, "goal created",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", goal.ID.String()))

	return goal, nil
}

// Complete marks an Active goal Completed and returns the caller's refreshed
// active list. Missing goals yield ErrNotFound; already completed goals
// yield ErrConflict.
func (s *Service) Complete(ctx context.Context, input CompleteGoalInput) ([]domain.SelfCareGoal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.goals.Complete(ctx, userID, input.GoalID, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("goal.Complete: %w", err)
	}

	s.log.InfoContext(ctx, "goal completed",
		slog.String("user_id", userID.String()),
		slog.String("goal_id", input.GoalID.String()))

	active, err := s.goals.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("goal.Complete refetch: %w", err)
	}
	return active, nil
}

// RecordProgress adds to the current amount of an Active goal.
func (s *Service) RecordProgress(ctx context.Context, input ProgressInput) (*domain.SelfCareGoal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	goal, err := s.goals.AddProgress(ctx, userID, input.GoalID, input.Amount)
	if err != nil {
		return nil, fmt.Errorf("goal.RecordProgress: %w", err)
	}

	// Only the update that crosses the target is logged.
	if goal.TargetReached() && goal.CurrentAmount-input.Amount < *goal.TargetAmount {
		s.log.InfoContext(ctx, "goal target reached",
			slog.String("user_id", userID.String()),
			slog.String("goal_id", goal.ID.String()))
	}
	return goal, nil
}
