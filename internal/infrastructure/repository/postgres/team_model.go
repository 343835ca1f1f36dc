package postgres

import (
	"database/sql"
	"time"

	"github.com/playfield/tournament-service/internal/domain/team"
)

type teamTableModel struct {
	ID        string         `db:"id"`
	EventID   string         `db:"event_id"`
	Name      string         `db:"name"`
	City      string         `db:"city"`
	CoachName string         `db:"coach_name"`
	CaptainID sql.NullString `db:"captain_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func teamRowFromDomain(item team.Team, now time.Time) teamTableModel {
	return teamTableModel{
		ID:        item.ID,
		EventID:   item.EventID,
		Name:      item.Name,
		City:      item.City,
		CoachName: item.CoachName,
		CaptainID: nullString(item.CaptainID),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:        row.ID,
		EventID:   row.EventID,
		Name:      row.Name,
		City:      row.City,
		CoachName: row.CoachName,
		CaptainID: stringPtr(row.CaptainID),
	}
}
