package usecase

import (
	"errors"
	"testing"

	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/infrastructure/repository/memory"
)

func newPlayerService(store *memory.Store, mode sport.BindMode) *PlayerService {
	schemas := NewSportService(memory.NewSportRepository(store), nil, &seqIDGenerator{prefix: "sport"}, nil)
	return NewPlayerService(
		memory.NewEventRepository(store),
		memory.NewTeamRepository(store),
		memory.NewPlayerRepository(store),
		schemas,
		mode,
		&seqIDGenerator{prefix: "player"},
		nil,
	)
}

func TestPlayerService_AddPlayer_CoercesNumericStrings(t *testing.T) {
	store := seededStore(t)
	service := newPlayerService(store, sport.BindStrict)

	created, err := service.AddPlayer(t.Context(), managerPrincipal(), memory.SeedTeamAID, PlayerInput{
		Name: "V. Joshi",
		Details: map[string]any{
			"batsman": true,
			"runs":    "45",
			"wickets": float64(2),
		},
	})
	if err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	if created.Details["runs"] != int64(45) {
		t.Fatalf("expected runs int64(45), got %T(%v)", created.Details["runs"], created.Details["runs"])
	}
	if created.Details["wickets"] != int64(2) {
		t.Fatalf("expected wickets int64(2), got %T(%v)", created.Details["wickets"], created.Details["wickets"])
	}
}

func TestPlayerService_AddPlayer_StrictRejectsUnknownKeys(t *testing.T) {
	service := newPlayerService(seededStore(t), sport.BindStrict)

	_, err := service.AddPlayer(t.Context(), managerPrincipal(), memory.SeedTeamAID, PlayerInput{
		Name:    "Stray",
		Details: map[string]any{"shoe_size": 11},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_AddPlayer_LenientKeepsUnknownKeys(t *testing.T) {
	service := newPlayerService(seededStore(t), sport.BindLenient)

	created, err := service.AddPlayer(t.Context(), managerPrincipal(), memory.SeedTeamAID, PlayerInput{
		Name:    "Keeper",
		Details: map[string]any{"shoe_size": 11, "runs": 3},
	})
	if err != nil {
		t.Fatalf("add player failed: %v", err)
	}
	if created.Details["shoe_size"] != 11 {
		t.Fatalf("expected undeclared key kept, got %v", created.Details)
	}
	if created.Details["runs"] != int64(3) {
		t.Fatalf("expected declared stat coerced, got %T", created.Details["runs"])
	}
}

func TestPlayerService_AddPlayer_CompletedEventLocked(t *testing.T) {
	store := seededStore(t)
	eventService := newEventService(store)
	if _, err := eventService.TransitionStatus(t.Context(), managerPrincipal(), memory.SeedEventID, "completed"); err != nil {
		t.Fatalf("complete event: %v", err)
	}

	service := newPlayerService(store, sport.BindLenient)
	_, err := service.AddPlayer(t.Context(), managerPrincipal(), memory.SeedTeamAID, PlayerInput{
		Name:    "Too Late",
		Details: map[string]any{},
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestPlayerService_AddPlayer_OtherManagerForbidden(t *testing.T) {
	service := newPlayerService(seededStore(t), sport.BindLenient)

	_, err := service.AddPlayer(t.Context(), user.Principal{UserID: "other-manager", Role: user.RoleManager}, memory.SeedTeamAID, PlayerInput{
		Name: "Intruder",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPlayerService_UpdatePlayer_RebindsFullDocument(t *testing.T) {
	store := seededStore(t)
	service := newPlayerService(store, sport.BindStrict)

	created, err := service.AddPlayer(t.Context(), managerPrincipal(), memory.SeedTeamAID, PlayerInput{
		Name:    "Rebinder",
		Details: map[string]any{"runs": 10, "batsman": true},
	})
	if err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	updated, err := service.UpdatePlayer(t.Context(), managerPrincipal(), created.ID, PlayerInput{
		Details: map[string]any{"wickets": "4"},
	})
	if err != nil {
		t.Fatalf("update player failed: %v", err)
	}
	if updated.Details["wickets"] != int64(4) {
		t.Fatalf("expected wickets int64(4), got %v", updated.Details["wickets"])
	}
	if _, ok := updated.Details["runs"]; ok {
		t.Fatalf("expected old document replaced, got %v", updated.Details)
	}
}
