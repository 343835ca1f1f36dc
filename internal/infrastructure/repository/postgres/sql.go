package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/playfield/tournament-service/internal/domain/storage"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// uniqueViolation is the postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// conflictError translates a unique violation into a storage.ConflictError
// naming the colliding field, derived from the constraint name
// ("users_email_key" names "email"). Any other error passes through.
func conflictError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolation {
		return err
	}

	field := strings.TrimSuffix(pqErr.Constraint, "_key")
	if idx := strings.IndexByte(field, '_'); idx >= 0 {
		field = field[idx+1:]
	}
	if field == "" {
		field = "record"
	}
	return storage.NewConflict(field)
}

func marshalDoc(doc map[string]any) (types.JSONText, error) {
	if doc == nil {
		doc = map[string]any{}
	}
	raw, err := sonic.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal json document: %w", err)
	}
	return types.JSONText(raw), nil
}

func unmarshalDoc(raw types.JSONText) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var doc map[string]any
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal json document: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func stringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	out := value.String
	return &out
}
