package user

import "context"

// Repository describes user persistence needs from use cases.
//
// Create and Update surface uniqueness violations as storage.ConflictError
// values so callers can name the colliding field.
type Repository interface {
	Create(ctx context.Context, item User) error
	GetByID(ctx context.Context, userID string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	Update(ctx context.Context, item User) error
}

// SavedEventRepository holds the many-to-many user/event bookmark relation
// with set semantics: saving twice is a no-op, unsaving removes membership.
type SavedEventRepository interface {
	Save(ctx context.Context, userID, eventID string) error
	Unsave(ctx context.Context, userID, eventID string) error
	IsSaved(ctx context.Context, userID, eventID string) (bool, error)
	ListEventIDs(ctx context.Context, userID string) ([]string, error)
}
