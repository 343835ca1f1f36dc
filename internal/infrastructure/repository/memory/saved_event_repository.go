package memory

import (
	"context"
	"sort"
)

// SavedEventRepository keeps the user/event bookmark relation as a set per
// user, so duplicate saves collapse naturally.
type SavedEventRepository struct {
	store *Store
}

func NewSavedEventRepository(store *Store) *SavedEventRepository {
	return &SavedEventRepository{store: store}
}

func (r *SavedEventRepository) Save(_ context.Context, userID, eventID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	eventIDs, ok := r.store.saved[userID]
	if !ok {
		eventIDs = make(map[string]struct{})
		r.store.saved[userID] = eventIDs
	}
	eventIDs[eventID] = struct{}{}

	return nil
}

func (r *SavedEventRepository) Unsave(_ context.Context, userID, eventID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if eventIDs, ok := r.store.saved[userID]; ok {
		delete(eventIDs, eventID)
	}
	return nil
}

func (r *SavedEventRepository) IsSaved(_ context.Context, userID, eventID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	eventIDs, ok := r.store.saved[userID]
	if !ok {
		return false, nil
	}
	_, saved := eventIDs[eventID]
	return saved, nil
}

func (r *SavedEventRepository) ListEventIDs(_ context.Context, userID string) ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	eventIDs, ok := r.store.saved[userID]
	if !ok {
		return []string{}, nil
	}

	out := make([]string, 0, len(eventIDs))
	for eventID := range eventIDs {
		out = append(out, eventID)
	}
	sort.Strings(out)

	return out, nil
}
