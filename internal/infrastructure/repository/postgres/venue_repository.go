package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/playfield/tournament-service/internal/domain/venue"
	qb "github.com/playfield/tournament-service/internal/platform/querybuilder"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Create(ctx context.Context, item venue.Venue) error {
	query, args, err := qb.InsertModel("venues", venueRowFromDomain(item, time.Now().UTC()), "")
	if err != nil {
		return fmt.Errorf("build insert venue query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert venue: %w", conflictError(err))
	}
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, venueID string) (venue.Venue, bool, error) {
	query, args, err := qb.Select("*").From("venues").Where(qb.Eq("id", venueID)).ToSQL()
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("build get venue query: %w", err)
	}

	var row venueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return venue.Venue{}, false, nil
		}
		return venue.Venue{}, false, fmt.Errorf("get venue: %w", err)
	}

	return venueFromRow(row), true, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	query, args, err := qb.Select("*").From("venues").OrderBy("name").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, venueFromRow(row))
	}
	return out, nil
}

func (r *VenueRepository) Update(ctx context.Context, item venue.Venue) error {
	query, args, err := qb.Update("venues").
		Set("name", item.Name).
		Set("city", item.City).
		Set("address", item.Address).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update venue query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update venue: %w", err)
	}
	return nil
}
