package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/playfield/tournament-service/internal/domain/fixture"
)

type fixtureTableModel struct {
	ID        string         `db:"id"`
	EventID   string         `db:"event_id"`
	VenueID   sql.NullString `db:"venue_id"`
	StartTime time.Time      `db:"start_time"`
	TeamAID   sql.NullString `db:"team_a_id"`
	TeamBID   sql.NullString `db:"team_b_id"`
	Title     string         `db:"title"`
	ScoreData types.JSONText `db:"score_data"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func fixtureRowFromDomain(item fixture.Fixture, now time.Time) (fixtureTableModel, error) {
	scoreDoc, err := marshalDoc(item.ScoreData)
	if err != nil {
		return fixtureTableModel{}, fmt.Errorf("marshal fixture score data: %w", err)
	}

	return fixtureTableModel{
		ID:        item.ID,
		EventID:   item.EventID,
		VenueID:   nullString(item.VenueID),
		StartTime: item.StartTime,
		TeamAID:   nullString(item.TeamAID),
		TeamBID:   nullString(item.TeamBID),
		Title:     item.Title,
		ScoreData: scoreDoc,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func fixtureFromRow(row fixtureTableModel) (fixture.Fixture, error) {
	scoreDoc, err := unmarshalDoc(row.ScoreData)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("unmarshal fixture score data: %w", err)
	}

	return fixture.Fixture{
		ID:        row.ID,
		EventID:   row.EventID,
		VenueID:   stringPtr(row.VenueID),
		StartTime: row.StartTime,
		TeamAID:   stringPtr(row.TeamAID),
		TeamBID:   stringPtr(row.TeamBID),
		Title:     row.Title,
		ScoreData: scoreDoc,
	}, nil
}
