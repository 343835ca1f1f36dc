package memory

import (
	"context"
	"sort"

	"github.com/playfield/tournament-service/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.teams[item.ID] = item
	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	return item, ok, nil
}

func (r *TeamRepository) ListByEvent(_ context.Context, eventID string) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.store.teams {
		if item.EventID == eventID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *TeamRepository) CountByEvent(_ context.Context, eventID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, item := range r.store.teams {
		if item.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *TeamRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.teams), nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[item.ID]; ok {
		r.store.teams[item.ID] = item
	}
	return nil
}

// Delete removes the team and its players together.
func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[teamID]; !ok {
		return nil
	}

	for playerID, playerItem := range r.store.players {
		if playerItem.TeamID == teamID {
			delete(r.store.players, playerID)
		}
	}
	delete(r.store.teams, teamID)

	return nil
}
