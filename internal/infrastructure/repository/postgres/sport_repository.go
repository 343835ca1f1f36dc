package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/playfield/tournament-service/internal/domain/sport"
	qb "github.com/playfield/tournament-service/internal/platform/querybuilder"
)

type SportRepository struct {
	db *sqlx.DB
}

func NewSportRepository(db *sqlx.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) Create(ctx context.Context, item sport.Sport) error {
	row, err := sportRowFromDomain(item, time.Now().UTC())
	if err != nil {
		return err
	}

	query, args, err := qb.InsertModel("sports", row, "")
	if err != nil {
		return fmt.Errorf("build insert sport query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert sport: %w", conflictError(err))
	}
	return nil
}

func (r *SportRepository) GetByID(ctx context.Context, sportID string) (sport.Sport, bool, error) {
	query, args, err := qb.Select("*").From("sports").Where(qb.Eq("id", sportID)).ToSQL()
	if err != nil {
		return sport.Sport{}, false, fmt.Errorf("build get sport query: %w", err)
	}

	var row sportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return sport.Sport{}, false, nil
		}
		return sport.Sport{}, false, fmt.Errorf("get sport: %w", err)
	}

	item, err := sportFromRow(row)
	if err != nil {
		return sport.Sport{}, false, err
	}
	return item, true, nil
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	query, args, err := qb.Select("*").From("sports").OrderBy("name").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sports query: %w", err)
	}

	var rows []sportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}

	out := make([]sport.Sport, 0, len(rows))
	for _, row := range rows {
		item, err := sportFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *SportRepository) GetSchema(ctx context.Context, sportID string) (sport.ConfigSchema, bool, error) {
	item, exists, err := r.GetByID(ctx, sportID)
	if err != nil || !exists {
		return sport.ConfigSchema{}, false, err
	}
	return item.ConfigSchema, true, nil
}

func (r *SportRepository) RegisterSchema(ctx context.Context, sportID string, schema sport.ConfigSchema) error {
	schemaDoc, err := marshalDoc(schema.Document())
	if err != nil {
		return fmt.Errorf("marshal sport config schema: %w", err)
	}

	query, args, err := qb.Update("sports").
		Set("config_schema", schemaDoc).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", sportID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build register schema query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("register sport schema: %w", err)
	}
	return nil
}
