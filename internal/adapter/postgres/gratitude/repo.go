// Package gratitude implements the GratitudeEntry repository using PostgreSQL.
package gratitude

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mindtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mindtrack-backend/internal/domain"
)

const table = "gratitude_entries"

// Repo provides gratitude journal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new gratitude repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type gratitudeRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Items     []string  `db:"items"`
	CreatedAt time.Time `db:"created_at"`
}

func (r gratitudeRow) toDomain() domain.GratitudeEntry {
	items := r.Items
	if items == nil {
		items = []string{}
	}
	return domain.GratitudeEntry{ID: r.ID, UserID: r.UserID, Items: items, CreatedAt: r.CreatedAt}
}

// Create inserts an entry. The items_check constraint surfaces as
// domain.ErrValidation.
func (r *Repo) Create(ctx context.Context, e domain.GratitudeEntry) (*domain.GratitudeEntry, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "items", "created_at").
		Values(e.ID, e.UserID, e.Items, e.CreatedAt).
		Suffix("RETURNING id, user_id, items, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert gratitude entry: %w", err)
	}

	var row gratitudeRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "gratitude_entry", e.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// ListRecent returns the user's newest entries first, at most limit
// (clamped to the listing bounds).
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GratitudeEntry, error) {
	query, args, err := postgres.Builder().
		Select("id", "user_id", "items", "created_at").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(domain.ClampLimit(limit))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list gratitude entries: %w", err)
	}

	var rows []gratitudeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "gratitude_entry", userID)
	}

	entries := make([]domain.GratitudeEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}
