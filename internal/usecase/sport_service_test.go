package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/infrastructure/repository/memory"
	"github.com/playfield/tournament-service/internal/platform/cache"
)

func newSportService(store *memory.Store, schemas *cache.Store) *SportService {
	return NewSportService(memory.NewSportRepository(store), schemas, &seqIDGenerator{prefix: "sport"}, nil)
}

func TestSportService_CreateSport(t *testing.T) {
	store := seededStore(t)
	service := newSportService(store, nil)

	created, err := service.CreateSport(t.Context(), adminPrincipal(), CreateSportInput{
		Name: "Hockey",
		Type: "  Team ",
		Schema: sport.ConfigSchema{
			Roles:      []string{"forward", "goalkeeper"},
			StatFields: []string{"goals"},
		},
	})
	if err != nil {
		t.Fatalf("create sport failed: %v", err)
	}
	if created.Type != sport.TypeTeam {
		t.Fatalf("expected type normalized to %q, got %q", sport.TypeTeam, created.Type)
	}

	fetched, err := service.GetSport(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get sport failed: %v", err)
	}
	if len(fetched.ConfigSchema.Roles) != 2 {
		t.Fatalf("expected schema persisted, got %v", fetched.ConfigSchema)
	}
}

func TestSportService_CreateSport_ManagerForbidden(t *testing.T) {
	service := newSportService(seededStore(t), nil)

	_, err := service.CreateSport(t.Context(), managerPrincipal(), CreateSportInput{
		Name: "Hockey",
		Type: sport.TypeTeam,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSportService_CreateSport_DuplicateName(t *testing.T) {
	service := newSportService(seededStore(t), nil)

	_, err := service.CreateSport(t.Context(), adminPrincipal(), CreateSportInput{
		Name: "Cricket",
		Type: sport.TypeTeam,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSportService_CreateSport_InvalidType(t *testing.T) {
	service := newSportService(seededStore(t), nil)

	_, err := service.CreateSport(t.Context(), adminPrincipal(), CreateSportInput{
		Name: "Esports",
		Type: "virtual",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSportService_GetSchema_UsesCacheUntilRegister(t *testing.T) {
	store := seededStore(t)
	service := newSportService(store, cache.NewStore(time.Minute))

	first, err := service.GetSchema(t.Context(), memory.SeedSportCricketID)
	if err != nil {
		t.Fatalf("get schema failed: %v", err)
	}
	if !first.IsStatField("runs") {
		t.Fatalf("expected seeded cricket schema, got %v", first)
	}

	// A write that bypasses the service leaves the cached copy in place.
	if err := memory.NewSportRepository(store).RegisterSchema(t.Context(), memory.SeedSportCricketID, sport.ConfigSchema{
		StatFields: []string{"sixes"},
	}); err != nil {
		t.Fatalf("register schema via repo: %v", err)
	}
	cached, err := service.GetSchema(t.Context(), memory.SeedSportCricketID)
	if err != nil {
		t.Fatalf("get schema failed: %v", err)
	}
	if !cached.IsStatField("runs") {
		t.Fatalf("expected stale cached schema, got %v", cached)
	}

	// Registering through the service invalidates the cache.
	if err := service.RegisterSchema(t.Context(), adminPrincipal(), memory.SeedSportCricketID, sport.ConfigSchema{
		StatFields: []string{"sixes"},
	}); err != nil {
		t.Fatalf("register schema failed: %v", err)
	}
	fresh, err := service.GetSchema(t.Context(), memory.SeedSportCricketID)
	if err != nil {
		t.Fatalf("get schema failed: %v", err)
	}
	if !fresh.IsStatField("sixes") || fresh.IsStatField("runs") {
		t.Fatalf("expected refreshed schema, got %v", fresh)
	}
}

func TestSportService_RegisterSchema_ManagerForbidden(t *testing.T) {
	service := newSportService(seededStore(t), nil)

	err := service.RegisterSchema(t.Context(), managerPrincipal(), memory.SeedSportCricketID, sport.ConfigSchema{})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSportService_GetSchema_UnknownSport(t *testing.T) {
	service := newSportService(seededStore(t), nil)

	_, err := service.GetSchema(t.Context(), "missing-sport")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
