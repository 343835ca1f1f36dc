package memory

import (
	"context"
	"sort"

	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/domain/storage"
)

type SportRepository struct {
	store *Store
}

func NewSportRepository(store *Store) *SportRepository {
	return &SportRepository{store: store}
}

func (r *SportRepository) Create(_ context.Context, item sport.Sport) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.sports {
		if existing.ID != item.ID && existing.Name == item.Name {
			return storage.NewConflict("name")
		}
	}

	r.store.sports[item.ID] = item
	return nil
}

func (r *SportRepository) GetByID(_ context.Context, sportID string) (sport.Sport, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.sports[sportID]
	return item, ok, nil
}

func (r *SportRepository) List(_ context.Context) ([]sport.Sport, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]sport.Sport, 0, len(r.store.sports))
	for _, item := range r.store.sports {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *SportRepository) GetSchema(_ context.Context, sportID string) (sport.ConfigSchema, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.sports[sportID]
	if !ok {
		return sport.ConfigSchema{}, false, nil
	}
	return item.ConfigSchema, true, nil
}

func (r *SportRepository) RegisterSchema(_ context.Context, sportID string, schema sport.ConfigSchema) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.sports[sportID]
	if !ok {
		return nil
	}
	item.ConfigSchema = schema
	r.store.sports[sportID] = item

	return nil
}
