package memory

import (
	"context"
	"sort"

	"github.com/playfield/tournament-service/internal/domain/venue"
)

type VenueRepository struct {
	store *Store
}

func NewVenueRepository(store *Store) *VenueRepository {
	return &VenueRepository{store: store}
}

func (r *VenueRepository) Create(_ context.Context, item venue.Venue) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.venues[item.ID] = item
	return nil
}

func (r *VenueRepository) GetByID(_ context.Context, venueID string) (venue.Venue, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.venues[venueID]
	return item, ok, nil
}

func (r *VenueRepository) List(_ context.Context) ([]venue.Venue, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]venue.Venue, 0, len(r.store.venues))
	for _, item := range r.store.venues {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *VenueRepository) Update(_ context.Context, item venue.Venue) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.venues[item.ID]; ok {
		r.store.venues[item.ID] = item
	}
	return nil
}
