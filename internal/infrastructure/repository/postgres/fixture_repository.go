package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/playfield/tournament-service/internal/domain/fixture"
	qb "github.com/playfield/tournament-service/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) Create(ctx context.Context, item fixture.Fixture) error {
	row, err := fixtureRowFromDomain(item, time.Now().UTC())
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("fixtures", row, "")
	if err != nil {
		return fmt.Errorf("build insert fixture query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert fixture: %w", err)
	}
	return nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").Where(qb.Eq("id", fixtureID)).ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture: %w", err)
	}

	item, err := fixtureFromRow(row)
	if err != nil {
		return fixture.Fixture{}, false, err
	}
	return item, true, nil
}

func (r *FixtureRepository) ListByEvent(ctx context.Context, eventID string) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(qb.Eq("event_id", eventID)).
		OrderBy("start_time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fixtures by event query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fixtures by event: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		item, err := fixtureFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *FixtureRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("fixtures").
		Where(qb.Eq("event_id", eventID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count fixtures by event query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count fixtures by event: %w", err)
	}
	return count, nil
}

func (r *FixtureRepository) Update(ctx context.Context, item fixture.Fixture) error {
	row, err := fixtureRowFromDomain(item, time.Now().UTC())
	if err != nil {
		return err
	}

	query, args, err := qb.Update("fixtures").
		Set("venue_id", row.VenueID).
		Set("start_time", row.StartTime).
		Set("team_a_id", row.TeamAID).
		Set("team_b_id", row.TeamBID).
		Set("title", row.Title).
		Set("score_data", row.ScoreData).
		Set("updated_at", row.UpdatedAt).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fixture query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update fixture: %w", err)
	}
	return nil
}

func (r *FixtureRepository) Delete(ctx context.Context, fixtureID string) error {
	query, args, err := qb.DeleteFrom("fixtures").Where(qb.Eq("id", fixtureID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete fixture query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}
	return nil
}
