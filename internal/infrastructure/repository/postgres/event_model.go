package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/playfield/tournament-service/internal/domain/event"
)

type eventTableModel struct {
	ID          string         `db:"id"`
	SportID     string         `db:"sport_id"`
	ManagerID   string         `db:"manager_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	StartDate   time.Time      `db:"start_date"`
	EndDate     sql.NullTime   `db:"end_date"`
	Status      string         `db:"status"`
	VenueID     sql.NullString `db:"venue_id"`
	RulesConfig types.JSONText `db:"rules_config"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func eventRowFromDomain(item event.Event, now time.Time) (eventTableModel, error) {
	rulesDoc, err := marshalDoc(item.RulesConfig)
	if err != nil {
		return eventTableModel{}, fmt.Errorf("marshal event rules config: %w", err)
	}

	endDate := sql.NullTime{}
	if item.EndDate != nil {
		endDate = sql.NullTime{Time: *item.EndDate, Valid: true}
	}

	return eventTableModel{
		ID:          item.ID,
		SportID:     item.SportID,
		ManagerID:   item.ManagerID,
		Title:       item.Title,
		Description: item.Description,
		StartDate:   item.StartDate,
		EndDate:     endDate,
		Status:      item.Status,
		VenueID:     nullString(item.VenueID),
		RulesConfig: rulesDoc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func eventFromRow(row eventTableModel) (event.Event, error) {
	rulesDoc, err := unmarshalDoc(row.RulesConfig)
	if err != nil {
		return event.Event{}, fmt.Errorf("unmarshal event rules config: %w", err)
	}

	var endDate *time.Time
	if row.EndDate.Valid {
		t := row.EndDate.Time
		endDate = &t
	}

	return event.Event{
		ID:          row.ID,
		SportID:     row.SportID,
		ManagerID:   row.ManagerID,
		Title:       row.Title,
		Description: row.Description,
		StartDate:   row.StartDate,
		EndDate:     endDate,
		Status:      row.Status,
		VenueID:     stringPtr(row.VenueID),
		RulesConfig: rulesDoc,
	}, nil
}
