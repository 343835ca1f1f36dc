package postgres

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/playfield/tournament-service/internal/domain/sport"
)

type sportTableModel struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Type         string         `db:"type"`
	ConfigSchema types.JSONText `db:"config_schema"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func sportRowFromDomain(item sport.Sport, now time.Time) (sportTableModel, error) {
	schemaDoc, err := marshalDoc(item.ConfigSchema.Document())
	if err != nil {
		return sportTableModel{}, fmt.Errorf("marshal sport config schema: %w", err)
	}

	return sportTableModel{
		ID:           item.ID,
		Name:         item.Name,
		Type:         item.Type,
		ConfigSchema: schemaDoc,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func sportFromRow(row sportTableModel) (sport.Sport, error) {
	schemaDoc, err := unmarshalDoc(row.ConfigSchema)
	if err != nil {
		return sport.Sport{}, fmt.Errorf("unmarshal sport config schema: %w", err)
	}

	return sport.Sport{
		ID:           row.ID,
		Name:         row.Name,
		Type:         row.Type,
		ConfigSchema: sport.SchemaFromDocument(schemaDoc),
	}, nil
}
