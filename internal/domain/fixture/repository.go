package fixture

import "context"

type Repository interface {
	Create(ctx context.Context, item Fixture) error
	GetByID(ctx context.Context, fixtureID string) (Fixture, bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]Fixture, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
	Update(ctx context.Context, item Fixture) error
	Delete(ctx context.Context, fixtureID string) error
}
