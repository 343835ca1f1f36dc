package memory

import (
	"context"
	"sort"

	"github.com/playfield/tournament-service/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.players[item.ID] = item
	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, item := range r.store.players {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *PlayerRepository) CountByTeams(_ context.Context, teamIDs []string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[string]struct{}, len(teamIDs))
	for _, teamID := range teamIDs {
		wanted[teamID] = struct{}{}
	}

	count := 0
	for _, item := range r.store.players {
		if _, ok := wanted[item.TeamID]; ok {
			count++
		}
	}
	return count, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[item.ID]; ok {
		r.store.players[item.ID] = item
	}
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.players, playerID)
	return nil
}
