// Package mood implements the MoodEntry repository using PostgreSQL.
// Listing and aggregation queries are built with squirrel; rows are scanned
// with scany.
package mood

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

// IdempotencyConstraint is the unique constraint guarding (user_id, idempotency_key).
const IdempotencyConstraint = "mood_entries_user_idempotency_key"

const table = "mood_entries"

var columns = []string{"id", "user_id", "mood_type", "note", "idempotency_key", "created_at"}

// Repo provides mood entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new mood repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// moodRow mirrors a mood_entries row. mood_type is kept raw so legacy
// values survive until the domain mapping.
type moodRow struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	MoodType       string    `db:"mood_type"`
	Note           string    `db:"note"`
	IdempotencyKey *string   `db:"idempotency_key"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r moodRow) toDomain() domain.MoodEntry {
	return domain.MoodEntry{
		ID:             r.ID,
		UserID:         r.UserID,
		Mood:           domain.ParseMoodCategory(r.MoodType),
		Note:           r.Note,
		IdempotencyKey: r.IdempotencyKey,
		CreatedAt:      r.CreatedAt,
	}
}

func toDomainList(rows []moodRow) []domain.MoodEntry {
	out := make([]domain.MoodEntry, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an entry and returns the persisted row. A repeated
// (user_id, idempotency_key) pair yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e domain.MoodEntry) (*domain.MoodEntry, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.UserID, e.Mood.String(), e.Note, e.IdempotencyKey, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert mood entry: %w", err)
	}

	var row moodRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "mood_entry", e.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByIdempotencyKey returns the entry a user previously created with key.
func (r *Repo) GetByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*domain.MoodEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "idempotency_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select by idempotency key: %w", err)
	}

	var row moodRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "mood_entry", uuid.Nil)
	}

	e := row.toDomain()
	return &e, nil
}

// ListChronological returns every entry of a user, oldest first (ties by id).
func (r *Repo) ListChronological(ctx context.Context, userID uuid.UUID) ([]domain.MoodEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build chronological select: %w", err)
	}

	var rows []moodRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "mood_entry", userID)
	}

	return toDomainList(rows), nil
}

// List returns a newest-first page of a user's entries narrowed by filter.
// From is inclusive and To exclusive. Limit is clamped to the listing bounds.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) ([]domain.MoodEntry, error) {
	query, args, err := listQuery(userID, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list select: %w", err)
	}

	var rows []moodRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "mood_entry", userID)
	}

	return toDomainList(rows), nil
}

func listQuery(userID uuid.UUID, filter domain.MoodEntryFilter) sq.SelectBuilder {
	where := sq.And{sq.Eq{"user_id": userID}}
	if filter.From != nil {
		where = append(where, sq.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		where = append(where, sq.Lt{"created_at": *filter.To})
	}

	return postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(domain.ClampLimit(filter.Limit)))
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

// CountByCategory returns entry counts keyed by the raw stored mood_type.
// Folding raw values into categories is left to the domain.
func (r *Repo) CountByCategory(ctx context.Context) (map[string]int, error) {
	query, args, err := postgres.Builder().
		Select("mood_type", "count(*)").
		From(table).
		GroupBy("mood_type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by category: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			moodType string
			n        int
		)
		if err := rows.Scan(&moodType, &n); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[moodType] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}

	return counts, nil
}
