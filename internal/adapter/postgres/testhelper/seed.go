package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a regular (non-admin) user with a dummy password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, false)
}

// SeedAdmin creates a user whose is_admin flag is set.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, true)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, isAdmin bool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		Email:       "testuser-" + suffix + "@example.com",
		DisplayName: "Test User " + suffix,
		IsAdmin:     isAdmin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, display_name, password_hash, is_admin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.DisplayName, "$2a$04$seeded", user.IsAdmin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedMoodEntry inserts a raw mood_entries row. mood is stored verbatim so
// tests can seed legacy values outside the category set.
func SeedMoodEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, mood string, at time.Time) domain.MoodEntry {
	t.Helper()

	e := domain.MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Mood:      domain.ParseMoodCategory(mood),
		CreatedAt: at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO mood_entries (id, user_id, mood_type, created_at) VALUES ($1, $2, $3, $4)`,
		e.ID, e.UserID, mood, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMoodEntry: %v", err)
	}

	return e
}

// SeedGoal inserts an Active daily goal due in a week.
func SeedGoal(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, goalType string) domain.SelfCareGoal {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	g := domain.SelfCareGoal{
		ID:         uuid.New(),
		UserID:     userID,
		GoalType:   goalType,
		Frequency:  domain.GoalFrequencyDaily,
		TargetDate: time.Date(now.Year(), now.Month(), now.Day()+7, 0, 0, 0, 0, time.UTC),
		Status:     domain.GoalStatusActive,
		CreatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO self_care_goals (id, user_id, goal_type, frequency, target_date, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		g.ID, g.UserID, g.GoalType, string(g.Frequency), g.TargetDate, string(g.Status), g.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGoal: %v", err)
	}

	return g
}
