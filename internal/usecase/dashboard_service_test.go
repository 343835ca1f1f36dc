package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/infrastructure/repository/memory"
)

func newDashboardService(store *memory.Store) *DashboardService {
	return NewDashboardService(
		memory.NewEventRepository(store),
		memory.NewTeamRepository(store),
		memory.NewPlayerRepository(store),
		memory.NewFixtureRepository(store),
		memory.NewSportRepository(store),
		nil,
	)
}

func TestDashboardService_GetManagerDashboard(t *testing.T) {
	store := seededStore(t)
	service := newDashboardService(store)

	// A second, empty event ensures per-event counts stay separated.
	eventService := newEventService(store)
	if _, err := eventService.CreateEvent(t.Context(), managerPrincipal(), CreateEventInput{
		SportID:   memory.SeedSportFootballID,
		Title:     "Spring Sevens",
		StartDate: time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("create second event: %v", err)
	}

	dashboard, err := service.GetManagerDashboard(t.Context(), managerPrincipal())
	if err != nil {
		t.Fatalf("get manager dashboard failed: %v", err)
	}

	if dashboard.EventCount != 2 {
		t.Fatalf("expected 2 events, got %d", dashboard.EventCount)
	}

	byTitle := map[string]EventOverview{}
	for _, overview := range dashboard.Events {
		byTitle[overview.Event.Title] = overview
	}

	seeded := byTitle["Monsoon Cup"]
	if seeded.TeamCount != 2 || seeded.PlayerCount != 2 || seeded.FixtureCount != 1 {
		t.Fatalf("unexpected seeded counts: %+v", seeded)
	}

	empty := byTitle["Spring Sevens"]
	if empty.TeamCount != 0 || empty.PlayerCount != 0 || empty.FixtureCount != 0 {
		t.Fatalf("unexpected empty-event counts: %+v", empty)
	}
}

func TestDashboardService_GetManagerDashboard_PublicForbidden(t *testing.T) {
	service := newDashboardService(seededStore(t))

	_, err := service.GetManagerDashboard(t.Context(), user.Principal{UserID: "viewer-1", Role: user.RolePublic})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDashboardService_GetPublicStats(t *testing.T) {
	store := seededStore(t)
	service := newDashboardService(store)

	stats, err := service.GetPublicStats(t.Context())
	if err != nil {
		t.Fatalf("get public stats failed: %v", err)
	}
	if stats.ActiveEvents != 1 || stats.Teams != 2 || stats.Sports != 4 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if _, err := newEventService(store).TransitionStatus(t.Context(), managerPrincipal(), memory.SeedEventID, "completed"); err != nil {
		t.Fatalf("complete event: %v", err)
	}

	stats, err = service.GetPublicStats(t.Context())
	if err != nil {
		t.Fatalf("get public stats failed: %v", err)
	}
	if stats.ActiveEvents != 0 {
		t.Fatalf("expected completed event excluded, got %d", stats.ActiveEvents)
	}
}
