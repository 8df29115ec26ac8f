// Package goal implements the SelfCareGoal repository using PostgreSQL.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

const table = "self_care_goals"

// maxStoredAmount is the largest value a NUMERIC(12,2) amount column holds.
const maxStoredAmount = 9999999999.99

var columns = []string{
	"id", "user_id", "goal_type", "frequency", "target_date", "status",
	"target_amount", "current_amount", "unit", "created_at", "completed_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides self-care goal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new goal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type goalRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	GoalType      string     `db:"goal_type"`
	Frequency     string     `db:"frequency"`
	TargetDate    time.Time  `db:"target_date"`
	Status        string     `db:"status"`
	TargetAmount  *float64   `db:"target_amount"`
	CurrentAmount float64    `db:"current_amount"`
	Unit          *string    `db:"unit"`
	CreatedAt     time.Time  `db:"created_at"`
	CompletedAt   *time.Time `db:"completed_at"`
}

func (r goalRow) toDomain() domain.SelfCareGoal {
	return domain.SelfCareGoal{
		ID:            r.ID,
		UserID:        r.UserID,
		GoalType:      r.GoalType,
		Frequency:     domain.GoalFrequency(r.Frequency),
		TargetDate:    r.TargetDate,
		Status:        domain.GoalStatus(r.Status),
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Unit:          r.Unit,
		CreatedAt:     r.CreatedAt,
		CompletedAt:   r.CompletedAt,
	}
}

// Create inserts a goal and returns the persisted row.
func (r *Repo) Create(ctx context.Context, g domain.SelfCareGoal) (*domain.SelfCareGoal, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "goal_type", "frequency", "target_date", "status",
			"target_amount", "current_amount", "unit", "created_at").
		Values(g.ID, g.UserID, g.GoalType, g.Frequency.String(), g.TargetDate, g.Status.String(),
			g.TargetAmount, g.CurrentAmount, g.Unit, g.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert goal: %w", err)
	}

	return r.getOne(ctx, query, args, g.ID)
}

// GetByID returns a goal owned by userID. Goals of other users are reported
// as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID, goalID uuid.UUID) (*domain.SelfCareGoal, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": goalID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select goal: %w", err)
	}

	return r.getOne(ctx, query, args, goalID)
}

// ListActive returns the user's Active goals, oldest first.
func (r *Repo) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.SelfCareGoal, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "status": domain.GoalStatusActive.String()}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active goals: %w", err)
	}

	var rows []goalRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "self_care_goal", userID)
	}

	goals := make([]domain.SelfCareGoal, len(rows))
	for i, row := range rows {
		goals[i] = row.toDomain()
	}
	return goals, nil
}

// Complete moves an Active goal to Completed and stamps completed_at.
// A missing goal yields domain.ErrNotFound; a goal that is no longer
// Active yields domain.ErrConflict.
func (r *Repo) Complete(ctx context.Context, userID, goalID uuid.UUID, at time.Time) (*domain.SelfCareGoal, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", domain.GoalStatusCompleted.String()).
		Set("completed_at", at).
		Where(activeGoal(userID, goalID)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build complete goal: %w", err)
	}

	return r.updateActive(ctx, query, args, userID, goalID, notCompletable)
}

// AddProgress adds amount to current_amount of an Active goal. Error
// semantics match Complete, plus a *domain.ValidationError on "amount" when
// the new total would not fit the column.
func (r *Repo) AddProgress(ctx context.Context, userID, goalID uuid.UUID, amount float64) (*domain.SelfCareGoal, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("current_amount", sq.Expr("current_amount + ?", amount)).
		Where(activeGoal(userID, goalID)).
		Where(sq.Expr("current_amount + ? <= ?", amount, maxStoredAmount)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build add progress: %w", err)
	}

	return r.updateActive(ctx, query, args, userID, goalID, func(g *domain.SelfCareGoal) error {
		if !g.IsActive() {
			return notActive(g)
		}
		return domain.NewValidationError("amount", "total would exceed the maximum amount")
	})
}

func notCompletable(g *domain.SelfCareGoal) error {
	if g.Status.CanTransitionTo(domain.GoalStatusCompleted) {
		return fmt.Errorf("complete self_care_goal %s: row changed concurrently: %w", g.ID, domain.ErrConflict)
	}
	return notActive(g)
}

func notActive(g *domain.SelfCareGoal) error {
	return fmt.Errorf("self_care_goal %s is %s: %w", g.ID, g.Status, domain.ErrConflict)
}

func activeGoal(userID, goalID uuid.UUID) sq.Eq {
	return sq.Eq{"id": goalID, "user_id": userID, "status": domain.GoalStatusActive.String()}
}

// updateActive runs a conditional UPDATE. When no row matched, a missing
// goal yields domain.ErrNotFound and an existing one is handed to rejected
// to explain the miss.
func (r *Repo) updateActive(
	ctx context.Context,
	query string,
	args []any,
	userID, goalID uuid.UUID,
	rejected func(*domain.SelfCareGoal) error,
) (*domain.SelfCareGoal, error) {
	g, err := r.getOne(ctx, query, args, goalID)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	current, getErr := r.GetByID(ctx, userID, goalID)
	if getErr != nil {
		return nil, getErr
	}
	return nil, rejected(current)
}

func (r *Repo) getOne(ctx context.Context, query string, args []any, id uuid.UUID) (*domain.SelfCareGoal, error) {
	var row goalRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "self_care_goal", id)
	}

	g := row.toDomain()
	return &g, nil
}
