package team

import "context"

type Repository interface {
	Create(ctx context.Context, item Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]Team, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, item Team) error
	Delete(ctx context.Context, teamID string) error
}
