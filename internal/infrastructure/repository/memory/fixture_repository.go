package memory

import (
	"context"
	"sort"

	"github.com/playfield/tournament-service/internal/domain/fixture"
)

type FixtureRepository struct {
	store *Store
}

func NewFixtureRepository(store *Store) *FixtureRepository {
	return &FixtureRepository{store: store}
}

func (r *FixtureRepository) Create(_ context.Context, item fixture.Fixture) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.fixtures[item.ID] = item
	return nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.fixtures[fixtureID]
	return item, ok, nil
}

func (r *FixtureRepository) ListByEvent(_ context.Context, eventID string) ([]fixture.Fixture, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]fixture.Fixture, 0)
	for _, item := range r.store.fixtures {
		if item.EventID == eventID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })

	return out, nil
}

func (r *FixtureRepository) CountByEvent(_ context.Context, eventID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, item := range r.store.fixtures {
		if item.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *FixtureRepository) Update(_ context.Context, item fixture.Fixture) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.fixtures[item.ID]; ok {
		r.store.fixtures[item.ID] = item
	}
	return nil
}

func (r *FixtureRepository) Delete(_ context.Context, fixtureID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.fixtures, fixtureID)
	return nil
}
