package sport

import "context"

// Repository is the schema registry plus sport reference data. RegisterSchema
// is an idempotent upsert; there is no schema versioning.
type Repository interface {
	Create(ctx context.Context, item Sport) error
	GetByID(ctx context.Context, sportID string) (Sport, bool, error)
	List(ctx context.Context) ([]Sport, error)
	GetSchema(ctx context.Context, sportID string) (ConfigSchema, bool, error)
	RegisterSchema(ctx context.Context, sportID string, schema ConfigSchema) error
}
