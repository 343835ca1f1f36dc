package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/fixture"
	"github.com/playfield/tournament-service/internal/domain/player"
	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/domain/team"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/platform/logging"
)

const dashboardWorkerCount = 8

// EventOverview is one row of the manager dashboard.
type EventOverview struct {
	Event        event.Event
	TeamCount    int
	PlayerCount  int
	FixtureCount int
}

type ManagerDashboard struct {
	EventCount int
	Events     []EventOverview
}

// PublicStats backs the landing page hero numbers.
type PublicStats struct {
	ActiveEvents int
	Teams        int
	Sports       int
}

type DashboardService struct {
	eventRepo   event.Repository
	teamRepo    team.Repository
	playerRepo  player.Repository
	fixtureRepo fixture.Repository
	sportRepo   sport.Repository
	logger      *logging.Logger
}

func NewDashboardService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	fixtureRepo fixture.Repository,
	sportRepo sport.Repository,
	logger *logging.Logger,
) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DashboardService{
		eventRepo:   eventRepo,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		fixtureRepo: fixtureRepo,
		sportRepo:   sportRepo,
		logger:      logger,
	}
}

// GetManagerDashboard aggregates the caller's events with per-event roster
// and fixture counts. The per-event work is independent, so it fans out over
// a bounded worker pool.
func (s *DashboardService) GetManagerDashboard(ctx context.Context, principal user.Principal) (ManagerDashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetManagerDashboard")
	defer span.End()

	if principal.UserID == "" {
		return ManagerDashboard{}, fmt.Errorf("%w: caller identity is required", ErrUnauthenticated)
	}
	if principal.Role != user.RoleManager && !principal.IsAdmin() {
		return ManagerDashboard{}, fmt.Errorf("%w: manager role required", ErrForbidden)
	}

	events, err := s.eventRepo.List(ctx, event.Filter{ManagerID: principal.UserID})
	if err != nil {
		return ManagerDashboard{}, fmt.Errorf("list manager events: %w", err)
	}

	overviews := make([]EventOverview, len(events))
	errs := make([]error, len(events))

	pool, err := ants.NewPool(dashboardWorkerCount)
	if err != nil {
		return ManagerDashboard{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for idx, item := range events {
		idx, item := idx, item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			overviews[idx], errs[idx] = s.buildOverview(ctx, item)
		}); err != nil {
			workers.Done()
			return ManagerDashboard{}, fmt.Errorf("submit overview task: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return ManagerDashboard{}, err
		}
	}

	sort.SliceStable(overviews, func(i, j int) bool {
		return overviews[i].Event.StartDate.Before(overviews[j].Event.StartDate)
	})

	return ManagerDashboard{EventCount: len(events), Events: overviews}, nil
}

func (s *DashboardService) buildOverview(ctx context.Context, item event.Event) (EventOverview, error) {
	teams, err := s.teamRepo.ListByEvent(ctx, item.ID)
	if err != nil {
		return EventOverview{}, fmt.Errorf("list teams for event %s: %w", item.ID, err)
	}

	teamIDs := make([]string, 0, len(teams))
	for _, teamItem := range teams {
		teamIDs = append(teamIDs, teamItem.ID)
	}

	playerCount, err := s.playerRepo.CountByTeams(ctx, teamIDs)
	if err != nil {
		return EventOverview{}, fmt.Errorf("count players for event %s: %w", item.ID, err)
	}

	fixtureCount, err := s.fixtureRepo.CountByEvent(ctx, item.ID)
	if err != nil {
		return EventOverview{}, fmt.Errorf("count fixtures for event %s: %w", item.ID, err)
	}

	return EventOverview{
		Event:        item,
		TeamCount:    len(teams),
		PlayerCount:  playerCount,
		FixtureCount: fixtureCount,
	}, nil
}

// GetPublicStats counts non-completed events, teams, and sports for the
// public landing view.
func (s *DashboardService) GetPublicStats(ctx context.Context) (PublicStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetPublicStats")
	defer span.End()

	activeEvents, err := s.eventRepo.CountByStatusNot(ctx, event.StatusCompleted)
	if err != nil {
		return PublicStats{}, fmt.Errorf("count active events: %w", err)
	}

	teamCount, err := s.teamRepo.Count(ctx)
	if err != nil {
		return PublicStats{}, fmt.Errorf("count teams: %w", err)
	}

	sports, err := s.sportRepo.List(ctx)
	if err != nil {
		return PublicStats{}, fmt.Errorf("list sports: %w", err)
	}

	return PublicStats{
		ActiveEvents: activeEvents,
		Teams:        teamCount,
		Sports:       len(sports),
	}, nil
}
