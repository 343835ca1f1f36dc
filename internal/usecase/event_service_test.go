package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/infrastructure/repository/memory"
)

func newEventService(store *memory.Store) *EventService {
	return NewEventService(
		memory.NewEventRepository(store),
		memory.NewSportRepository(store),
		memory.NewVenueRepository(store),
		memory.NewTeamRepository(store),
		memory.NewFixtureRepository(store),
		&seqIDGenerator{prefix: "event"},
		nil,
	)
}

func TestEventService_CreateEvent(t *testing.T) {
	store := seededStore(t)
	service := newEventService(store)

	created, err := service.CreateEvent(t.Context(), managerPrincipal(), CreateEventInput{
		SportID:   memory.SeedSportFootballID,
		Title:     "Winter League",
		StartDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		VenueID:   memory.SeedVenueStadiumID,
	})
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	if created.Status != event.StatusUpcoming {
		t.Fatalf("expected new event upcoming, got %q", created.Status)
	}
	if created.ManagerID != memory.SeedManagerID {
		t.Fatalf("expected manager ownership, got %q", created.ManagerID)
	}
	if created.VenueID == nil || *created.VenueID != memory.SeedVenueStadiumID {
		t.Fatalf("expected venue bound, got %v", created.VenueID)
	}
}

func TestEventService_CreateEvent_PublicRoleForbidden(t *testing.T) {
	service := newEventService(seededStore(t))

	_, err := service.CreateEvent(t.Context(), user.Principal{UserID: "viewer-1", Role: user.RolePublic}, CreateEventInput{
		SportID:   memory.SeedSportFootballID,
		Title:     "Nope",
		StartDate: time.Now(),
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEventService_CreateEvent_UnknownSport(t *testing.T) {
	service := newEventService(seededStore(t))

	_, err := service.CreateEvent(t.Context(), managerPrincipal(), CreateEventInput{
		SportID:   "missing-sport",
		Title:     "Ghost Cup",
		StartDate: time.Now(),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventService_TransitionStatus(t *testing.T) {
	t.Run("forward steps", func(t *testing.T) {
		store := seededStore(t)
		service := newEventService(store)

		item, err := service.TransitionStatus(t.Context(), managerPrincipal(), memory.SeedEventID, "live")
		if err != nil {
			t.Fatalf("upcoming -> live failed: %v", err)
		}
		if item.Status != event.StatusLive {
			t.Fatalf("unexpected status %q", item.Status)
		}

		if _, err := service.TransitionStatus(t.Context(), managerPrincipal(), memory.SeedEventID, "completed"); err != nil {
			t.Fatalf("live -> completed failed: %v", err)
		}
	})

	t.Run("skipping live is allowed", func(t *testing.T) {
		service := newEventService(seededStore(t))

		item, err := service.TransitionStatus(t.Context(), managerPrincipal(), memory.SeedEventID, "completed")
		if err != nil {
			t.Fatalf("upcoming -> completed failed: %v", err)
		}
		if item.Status != event.StatusCompleted {
			t.Fatalf("unexpected status %q", item.Status)
		}
	})

	t.Run("moving backwards conflicts", func(t *testing.T) {
		service := newEventService(seededStore(t))

		if _, err := service.TransitionStatus(t.Context(), managerPrincipal(), memory.SeedEventID, "live"); err != nil {
			t.Fatalf("upcoming -> live failed: %v", err)
		}
		_, err := service.TransitionStatus(t.Context(), managerPrincipal(), memory.SeedEventID, "upcoming")
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("unknown status is invalid", func(t *testing.T) {
		service := newEventService(seededStore(t))

		_, err := service.TransitionStatus(t.Context(), managerPrincipal(), memory.SeedEventID, "archived")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestEventService_UpdateEvent_OtherManagerForbidden(t *testing.T) {
	service := newEventService(seededStore(t))

	_, err := service.UpdateEvent(t.Context(), user.Principal{UserID: "other-manager", Role: user.RoleManager}, memory.SeedEventID, UpdateEventInput{
		Title: "Hijacked Cup",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEventService_UpdateEvent_AdminMayEditAnyEvent(t *testing.T) {
	service := newEventService(seededStore(t))

	item, err := service.UpdateEvent(t.Context(), adminPrincipal(), memory.SeedEventID, UpdateEventInput{
		Description: "Rescheduled after the rains.",
	})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if item.Description != "Rescheduled after the rains." {
		t.Fatalf("unexpected description %q", item.Description)
	}
}

func TestEventService_DeleteEvent_Cascades(t *testing.T) {
	store := seededStore(t)
	service := newEventService(store)

	if err := service.DeleteEvent(t.Context(), managerPrincipal(), memory.SeedEventID); err != nil {
		t.Fatalf("delete event failed: %v", err)
	}

	teams, err := memory.NewTeamRepository(store).ListByEvent(t.Context(), memory.SeedEventID)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected teams removed, got %d", len(teams))
	}

	fixtures, err := memory.NewFixtureRepository(store).ListByEvent(t.Context(), memory.SeedEventID)
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if len(fixtures) != 0 {
		t.Fatalf("expected fixtures removed, got %d", len(fixtures))
	}

	players, err := memory.NewPlayerRepository(store).ListByTeam(t.Context(), memory.SeedTeamAID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("expected players removed, got %d", len(players))
	}
}

func TestEventService_GetEventDetail(t *testing.T) {
	service := newEventService(seededStore(t))

	detail, err := service.GetEventDetail(t.Context(), memory.SeedEventID)
	if err != nil {
		t.Fatalf("get event detail failed: %v", err)
	}

	if detail.Sport.ID != memory.SeedSportCricketID {
		t.Fatalf("unexpected sport %q", detail.Sport.ID)
	}
	if detail.Venue == nil || detail.Venue.ID != memory.SeedVenueArenaID {
		t.Fatalf("expected venue resolved, got %v", detail.Venue)
	}
	if len(detail.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(detail.Teams))
	}
	if len(detail.Fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d", len(detail.Fixtures))
	}
}

func TestEventService_ListEvents_Filters(t *testing.T) {
	store := seededStore(t)
	service := newEventService(store)

	t.Run("search matches title case-insensitively", func(t *testing.T) {
		items, err := service.ListEvents(t.Context(), event.Filter{Search: "MONSOON"})
		if err != nil {
			t.Fatalf("list events: %v", err)
		}
		if len(items) != 1 || items[0].ID != memory.SeedEventID {
			t.Fatalf("unexpected result: %v", items)
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := service.ListEvents(t.Context(), event.Filter{Status: "archived"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("sport filter excludes other sports", func(t *testing.T) {
		items, err := service.ListEvents(t.Context(), event.Filter{SportID: memory.SeedSportFootballID})
		if err != nil {
			t.Fatalf("list events: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected no football events, got %d", len(items))
		}
	})
}

func TestEventService_DateWindow(t *testing.T) {
	service := newEventService(seededStore(t))
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	cases := map[string]time.Time{
		"today": now.AddDate(0, 0, 1),
		"week":  now.AddDate(0, 0, 7),
		"month": now.AddDate(0, 1, 0),
	}
	for keyword, want := range cases {
		bound, err := service.DateWindow(keyword)
		if err != nil {
			t.Fatalf("date window %q: %v", keyword, err)
		}
		if bound == nil || !bound.Equal(want) {
			t.Fatalf("date window %q: got %v want %v", keyword, bound, want)
		}
	}

	if bound, err := service.DateWindow(""); err != nil || bound != nil {
		t.Fatalf("expected nil bound for empty keyword, got %v %v", bound, err)
	}
	if _, err := service.DateWindow("fortnight"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
