package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/playfield/tournament-service/internal/domain/event"
	qb "github.com/playfield/tournament-service/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, item event.Event) error {
	row, err := eventRowFromDomain(item, time.Now().UTC())
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("events", row, "")
	if err != nil {
		return fmt.Errorf("build insert event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	query, args, err := qb.Select("*").From("events").Where(qb.Eq("id", eventID)).ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build get event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event: %w", err)
	}

	item, err := eventFromRow(row)
	if err != nil {
		return event.Event{}, false, err
	}
	return item, true, nil
}

func (r *EventRepository) List(ctx context.Context, filter event.Filter) ([]event.Event, error) {
	builder := qb.Select("*").From("events")
	if filter.SportID != "" {
		builder = builder.Where(qb.Eq("sport_id", filter.SportID))
	}
	if filter.VenueID != "" {
		builder = builder.Where(qb.Eq("venue_id", filter.VenueID))
	}
	if filter.Status != "" {
		builder = builder.Where(qb.Eq("status", filter.Status))
	}
	if filter.ManagerID != "" {
		builder = builder.Where(qb.Eq("manager_id", filter.ManagerID))
	}
	if filter.Search != "" {
		builder = builder.Where(qb.ILike("title", "%"+filter.Search+"%"))
	}
	if filter.StartBefore != nil {
		builder = builder.Where(qb.Lte("start_date", *filter.StartBefore))
	}

	query, args, err := builder.OrderBy("start_date", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		item, err := eventFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *EventRepository) Update(ctx context.Context, item event.Event) error {
	row, err := eventRowFromDomain(item, time.Now().UTC())
	if err != nil {
		return err
	}

	query, args, err := qb.Update("events").
		Set("sport_id", row.SportID).
		Set("manager_id", row.ManagerID).
		Set("title", row.Title).
		Set("description", row.Description).
		Set("start_date", row.StartDate).
		Set("end_date", row.EndDate).
		Set("status", row.Status).
		Set("venue_id", row.VenueID).
		Set("rules_config", row.RulesConfig).
		Set("updated_at", row.UpdatedAt).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update event query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete removes the event with its teams, players, fixtures and saved-event
// references inside one transaction.
func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin event delete: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	steps := []struct {
		name  string
		query string
	}{
		{"delete event players", "DELETE FROM players WHERE team_id IN (SELECT id FROM teams WHERE event_id = $1)"},
		{"delete event teams", "DELETE FROM teams WHERE event_id = $1"},
		{"delete event fixtures", "DELETE FROM fixtures WHERE event_id = $1"},
		{"delete saved event refs", "DELETE FROM saved_events WHERE event_id = $1"},
		{"delete event", "DELETE FROM events WHERE id = $1"},
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step.query, eventID); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit event delete: %w", err)
	}
	return nil
}

func (r *EventRepository) CountByStatusNot(ctx context.Context, status string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("events").
		Where(qb.NotEq("status", status)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count events query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}
