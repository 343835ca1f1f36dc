package event

import "context"

// Repository persists events. Delete removes the event together with its
// teams, those teams' players, and its fixtures as one atomic unit.
type Repository interface {
	Create(ctx context.Context, item Event) error
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	List(ctx context.Context, filter Filter) ([]Event, error)
	Update(ctx context.Context, item Event) error
	Delete(ctx context.Context, eventID string) error
	CountByStatusNot(ctx context.Context, status string) (int, error)
}
