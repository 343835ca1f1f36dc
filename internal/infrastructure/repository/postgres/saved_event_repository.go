package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/playfield/tournament-service/internal/platform/querybuilder"
)

type SavedEventRepository struct {
	db *sqlx.DB
}

func NewSavedEventRepository(db *sqlx.DB) *SavedEventRepository {
	return &SavedEventRepository{db: db}
}

// Save is idempotent; the primary key on (user_id, event_id) absorbs repeats.
func (r *SavedEventRepository) Save(ctx context.Context, userID, eventID string) error {
	query, args, err := qb.InsertInto("saved_events").
		Columns("user_id", "event_id").
		Values(userID, eventID).
		Suffix("ON CONFLICT (user_id, event_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build save event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	return nil
}

func (r *SavedEventRepository) Unsave(ctx context.Context, userID, eventID string) error {
	query, args, err := qb.DeleteFrom("saved_events").
		Where(qb.Eq("user_id", userID), qb.Eq("event_id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build unsave event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unsave event: %w", err)
	}
	return nil
}

func (r *SavedEventRepository) IsSaved(ctx context.Context, userID, eventID string) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").From("saved_events").
		Where(qb.Eq("user_id", userID), qb.Eq("event_id", eventID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build is saved query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check saved event: %w", err)
	}
	return count > 0, nil
}

func (r *SavedEventRepository) ListEventIDs(ctx context.Context, userID string) ([]string, error) {
	query, args, err := qb.Select("event_id").From("saved_events").
		Where(qb.Eq("user_id", userID)).
		OrderBy("event_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list saved events query: %w", err)
	}

	out := []string{}
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list saved events: %w", err)
	}
	return out, nil
}
