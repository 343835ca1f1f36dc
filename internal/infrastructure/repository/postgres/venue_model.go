package postgres

import (
	"time"

	"github.com/playfield/tournament-service/internal/domain/venue"
)

type venueTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	City      string    `db:"city"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func venueRowFromDomain(item venue.Venue, now time.Time) venueTableModel {
	return venueTableModel{
		ID:        item.ID,
		Name:      item.Name,
		City:      item.City,
		Address:   item.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func venueFromRow(row venueTableModel) venue.Venue {
	return venue.Venue{
		ID:      row.ID,
		Name:    row.Name,
		City:    row.City,
		Address: row.Address,
	}
}
