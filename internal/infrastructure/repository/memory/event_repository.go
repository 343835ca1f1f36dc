package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/playfield/tournament-service/internal/domain/event"
)

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) Create(_ context.Context, item event.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.events[item.ID] = item
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.events[eventID]
	return item, ok, nil
}

func (r *EventRepository) List(_ context.Context, filter event.Filter) ([]event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]event.Event, 0, len(r.store.events))
	for _, item := range r.store.events {
		if !matchesFilter(item, filter) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })

	return out, nil
}

func matchesFilter(item event.Event, filter event.Filter) bool {
	if filter.SportID != "" && item.SportID != filter.SportID {
		return false
	}
	if filter.VenueID != "" && (item.VenueID == nil || *item.VenueID != filter.VenueID) {
		return false
	}
	if filter.Status != "" && item.Status != filter.Status {
		return false
	}
	if filter.ManagerID != "" && item.ManagerID != filter.ManagerID {
		return false
	}
	if filter.Search != "" && !strings.Contains(strings.ToLower(item.Title), strings.ToLower(filter.Search)) {
		return false
	}
	if filter.StartBefore != nil && item.StartDate.After(*filter.StartBefore) {
		return false
	}
	return true
}

func (r *EventRepository) Update(_ context.Context, item event.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[item.ID]; ok {
		r.store.events[item.ID] = item
	}
	return nil
}

// Delete removes the event, its teams, those teams' players, its fixtures
// and any saved-event references, all under one write lock.
func (r *EventRepository) Delete(_ context.Context, eventID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[eventID]; !ok {
		return nil
	}

	for teamID, teamItem := range r.store.teams {
		if teamItem.EventID != eventID {
			continue
		}
		for playerID, playerItem := range r.store.players {
			if playerItem.TeamID == teamID {
				delete(r.store.players, playerID)
			}
		}
		delete(r.store.teams, teamID)
	}

	for fixtureID, fixtureItem := range r.store.fixtures {
		if fixtureItem.EventID == eventID {
			delete(r.store.fixtures, fixtureID)
		}
	}

	for _, eventIDs := range r.store.saved {
		delete(eventIDs, eventID)
	}

	delete(r.store.events, eventID)
	return nil
}

func (r *EventRepository) CountByStatusNot(_ context.Context, status string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, item := range r.store.events {
		if item.Status != status {
			count++
		}
	}
	return count, nil
}
