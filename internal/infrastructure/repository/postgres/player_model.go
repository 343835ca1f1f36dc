package postgres

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/playfield/tournament-service/internal/domain/player"
)

type playerTableModel struct {
	ID        string         `db:"id"`
	TeamID    string         `db:"team_id"`
	Name      string         `db:"name"`
	Details   types.JSONText `db:"details"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func playerRowFromDomain(item player.Player, now time.Time) (playerTableModel, error) {
	detailsDoc, err := marshalDoc(item.Details)
	if err != nil {
		return playerTableModel{}, fmt.Errorf("marshal player details: %w", err)
	}

	return playerTableModel{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Name:      item.Name,
		Details:   detailsDoc,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func playerFromRow(row playerTableModel) (player.Player, error) {
	detailsDoc, err := unmarshalDoc(row.Details)
	if err != nil {
		return player.Player{}, fmt.Errorf("unmarshal player details: %w", err)
	}

	return player.Player{
		ID:      row.ID,
		TeamID:  row.TeamID,
		Name:    row.Name,
		Details: detailsDoc,
	}, nil
}
