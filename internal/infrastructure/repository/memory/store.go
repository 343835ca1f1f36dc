package memory

import (
	"sync"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/fixture"
	"github.com/playfield/tournament-service/internal/domain/player"
	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/domain/team"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/domain/venue"
)

// Store holds every table behind one lock. Multi-entity operations (the
// event cascade delete) run under a single write lock, so they are atomic:
// concurrent readers observe either all children or none removed.
type Store struct {
	mu       sync.RWMutex
	users    map[string]user.User
	sports   map[string]sport.Sport
	venues   map[string]venue.Venue
	events   map[string]event.Event
	teams    map[string]team.Team
	players  map[string]player.Player
	fixtures map[string]fixture.Fixture
	saved    map[string]map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]user.User),
		sports:   make(map[string]sport.Sport),
		venues:   make(map[string]venue.Venue),
		events:   make(map[string]event.Event),
		teams:    make(map[string]team.Team),
		players:  make(map[string]player.Player),
		fixtures: make(map[string]fixture.Fixture),
		saved:    make(map[string]map[string]struct{}),
	}
}
