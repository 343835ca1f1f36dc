package usecase

import (
	"errors"
	"testing"

	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/infrastructure/repository/memory"
)

func newTeamService(store *memory.Store) *TeamService {
	return NewTeamService(
		memory.NewEventRepository(store),
		memory.NewTeamRepository(store),
		memory.NewPlayerRepository(store),
		&seqIDGenerator{prefix: "team"},
		nil,
	)
}

func TestTeamService_AddTeam(t *testing.T) {
	store := seededStore(t)
	service := newTeamService(store)

	created, err := service.AddTeam(t.Context(), managerPrincipal(), memory.SeedEventID, TeamInput{
		Name:      "Dockside Daredevils",
		City:      "Port Blair",
		CoachName: "P. Nair",
	})
	if err != nil {
		t.Fatalf("add team failed: %v", err)
	}
	if created.EventID != memory.SeedEventID {
		t.Fatalf("expected team bound to event, got %q", created.EventID)
	}

	teams, err := service.ListTeamsByEvent(t.Context(), memory.SeedEventID)
	if err != nil {
		t.Fatalf("list teams failed: %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(teams))
	}
}

func TestTeamService_AddTeam_BlankNameInvalid(t *testing.T) {
	service := newTeamService(seededStore(t))

	_, err := service.AddTeam(t.Context(), managerPrincipal(), memory.SeedEventID, TeamInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_AddTeam_CompletedEventLocked(t *testing.T) {
	store := seededStore(t)
	if _, err := newEventService(store).TransitionStatus(t.Context(), managerPrincipal(), memory.SeedEventID, "completed"); err != nil {
		t.Fatalf("complete event: %v", err)
	}

	_, err := newTeamService(store).AddTeam(t.Context(), managerPrincipal(), memory.SeedEventID, TeamInput{Name: "Too Late FC"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTeamService_UpdateTeam_Captain(t *testing.T) {
	store := seededStore(t)
	service := newTeamService(store)

	players, err := memory.NewPlayerRepository(store).ListByTeam(t.Context(), memory.SeedTeamAID)
	if err != nil || len(players) == 0 {
		t.Fatalf("expected seeded players, got %d (%v)", len(players), err)
	}

	t.Run("captain from the roster", func(t *testing.T) {
		updated, err := service.UpdateTeam(t.Context(), managerPrincipal(), memory.SeedTeamAID, TeamInput{
			CaptainID: &players[0].ID,
		})
		if err != nil {
			t.Fatalf("update team failed: %v", err)
		}
		if updated.CaptainID == nil || *updated.CaptainID != players[0].ID {
			t.Fatalf("expected captain set, got %v", updated.CaptainID)
		}
	})

	t.Run("captain from another team rejected", func(t *testing.T) {
		outsider, err := newPlayerService(store, sport.BindLenient).AddPlayer(t.Context(), managerPrincipal(), memory.SeedTeamBID, PlayerInput{
			Name: "Rival",
		})
		if err != nil {
			t.Fatalf("add rival player: %v", err)
		}

		_, err = service.UpdateTeam(t.Context(), managerPrincipal(), memory.SeedTeamAID, TeamInput{
			CaptainID: &outsider.ID,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("empty id clears the captain", func(t *testing.T) {
		empty := ""
		updated, err := service.UpdateTeam(t.Context(), managerPrincipal(), memory.SeedTeamAID, TeamInput{
			CaptainID: &empty,
		})
		if err != nil {
			t.Fatalf("update team failed: %v", err)
		}
		if updated.CaptainID != nil {
			t.Fatalf("expected captain cleared, got %v", updated.CaptainID)
		}
	})
}

func TestTeamService_DeleteTeam_RemovesPlayers(t *testing.T) {
	store := seededStore(t)
	service := newTeamService(store)

	if err := service.DeleteTeam(t.Context(), managerPrincipal(), memory.SeedTeamAID); err != nil {
		t.Fatalf("delete team failed: %v", err)
	}

	players, err := memory.NewPlayerRepository(store).ListByTeam(t.Context(), memory.SeedTeamAID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("expected roster removed with team, got %d", len(players))
	}
}
