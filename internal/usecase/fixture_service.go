package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/fixture"
	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/domain/team"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/domain/venue"
	"github.com/playfield/tournament-service/internal/platform/id"
	"github.com/playfield/tournament-service/internal/platform/logging"
)

type ScheduleFixtureInput struct {
	StartTime time.Time
	VenueID   string
	TeamAID   string
	TeamBID   string
	Title     string
}

type UpdateFixtureInput struct {
	StartTime *time.Time
	VenueID   *string
	Title     string
}

type FixtureService struct {
	eventRepo   event.Repository
	sportRepo   sport.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	venueRepo   venue.Repository
	idGen       id.Generator
	logger      *logging.Logger
}

func NewFixtureService(
	eventRepo event.Repository,
	sportRepo sport.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	venueRepo venue.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureService{
		eventRepo:   eventRepo,
		sportRepo:   sportRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		venueRepo:   venueRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

// ScheduleFixture creates a fixture under an event. Team sports require two
// distinct teams of that event; individual sports forbid team references and
// use the title as the session label.
func (s *FixtureService) ScheduleFixture(ctx context.Context, principal user.Principal, eventID string, input ScheduleFixtureInput) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ScheduleFixture")
	defer span.End()

	eventItem, err := s.mutableEvent(ctx, principal, eventID)
	if err != nil {
		return fixture.Fixture{}, err
	}

	sportItem, exists, err := s.sportRepo.GetByID(ctx, eventItem.SportID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get sport: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: sport=%s", ErrNotFound, eventItem.SportID)
	}

	fixtureID, err := s.idGen.NewID()
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("generate fixture id: %w", err)
	}

	item := fixture.Fixture{
		ID:        fixtureID,
		EventID:   eventItem.ID,
		StartTime: input.StartTime,
		Title:     strings.TrimSpace(input.Title),
		ScoreData: map[string]any{},
	}

	if trimmed := strings.TrimSpace(input.VenueID); trimmed != "" {
		if _, exists, err := s.venueRepo.GetByID(ctx, trimmed); err != nil {
			return fixture.Fixture{}, fmt.Errorf("get venue: %w", err)
		} else if !exists {
			return fixture.Fixture{}, fmt.Errorf("%w: venue=%s", ErrNotFound, trimmed)
		}
		item.VenueID = &trimmed
	}

	teamAID := strings.TrimSpace(input.TeamAID)
	teamBID := strings.TrimSpace(input.TeamBID)

	switch sportItem.Type {
	case sport.TypeTeam:
		if teamAID == "" || teamBID == "" {
			return fixture.Fixture{}, fmt.Errorf("%w: team sport fixtures need team_a_id and team_b_id", ErrInvalidInput)
		}
		if teamAID == teamBID {
			return fixture.Fixture{}, fmt.Errorf("%w: team_a_id and team_b_id must differ", ErrInvalidInput)
		}
		for _, teamID := range []string{teamAID, teamBID} {
			teamItem, exists, err := s.teamRepo.GetByID(ctx, teamID)
			if err != nil {
				return fixture.Fixture{}, fmt.Errorf("get team: %w", err)
			}
			if !exists {
				return fixture.Fixture{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
			}
			if teamItem.EventID != eventItem.ID {
				return fixture.Fixture{}, fmt.Errorf("%w: team %s belongs to another event", ErrInvalidInput, teamID)
			}
		}
		item.TeamAID = &teamAID
		item.TeamBID = &teamBID
	case sport.TypeIndividual:
		if teamAID != "" || teamBID != "" {
			return fixture.Fixture{}, fmt.Errorf("%w: individual sport fixtures carry no team references", ErrInvalidInput)
		}
		if item.Title == "" {
			return fixture.Fixture{}, fmt.Errorf("%w: individual sport fixtures need a session title", ErrInvalidInput)
		}
	default:
		return fixture.Fixture{}, fmt.Errorf("sport %s has unknown type %q", sportItem.ID, sportItem.Type)
	}

	if err := item.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.fixtureRepo.Create(ctx, item); err != nil {
		return fixture.Fixture{}, fmt.Errorf("create fixture: %w", err)
	}

	s.logger.InfoContext(ctx, "fixture scheduled", "fixture_id", item.ID, "event_id", eventItem.ID)

	return item, nil
}

func (s *FixtureService) ListFixturesByEvent(ctx context.Context, eventID string) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixturesByEvent")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if _, exists, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	items, err := s.fixtureRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	return items, nil
}

func (s *FixtureService) UpdateFixture(ctx context.Context, principal user.Principal, fixtureID string, input UpdateFixtureInput) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.UpdateFixture")
	defer span.End()

	item, err := s.getFixture(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}
	if _, err := s.mutableEvent(ctx, principal, item.EventID); err != nil {
		return fixture.Fixture{}, err
	}

	if input.StartTime != nil {
		item.StartTime = *input.StartTime
	}
	if input.VenueID != nil {
		trimmed := strings.TrimSpace(*input.VenueID)
		if trimmed == "" {
			item.VenueID = nil
		} else {
			if _, exists, err := s.venueRepo.GetByID(ctx, trimmed); err != nil {
				return fixture.Fixture{}, fmt.Errorf("get venue: %w", err)
			} else if !exists {
				return fixture.Fixture{}, fmt.Errorf("%w: venue=%s", ErrNotFound, trimmed)
			}
			item.VenueID = &trimmed
		}
	}
	if title := strings.TrimSpace(input.Title); title != "" {
		item.Title = title
	}

	if err := item.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.fixtureRepo.Update(ctx, item); err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture: %w", err)
	}

	return item, nil
}

// RecordScore replaces the fixture's score document. The document's shape is
// sport-dependent and stored opaquely; only ownership and the completed-event
// lock gate the write.
func (s *FixtureService) RecordScore(ctx context.Context, principal user.Principal, fixtureID string, scoreData map[string]any) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.RecordScore")
	defer span.End()

	item, err := s.getFixture(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}
	if _, err := s.mutableEvent(ctx, principal, item.EventID); err != nil {
		return fixture.Fixture{}, err
	}
	if scoreData == nil {
		return fixture.Fixture{}, fmt.Errorf("%w: score data is required", ErrInvalidInput)
	}

	item.ScoreData = scoreData
	if err := s.fixtureRepo.Update(ctx, item); err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture score: %w", err)
	}

	s.logger.InfoContext(ctx, "fixture score recorded", "fixture_id", item.ID, "event_id", item.EventID)

	return item, nil
}

func (s *FixtureService) DeleteFixture(ctx context.Context, principal user.Principal, fixtureID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.DeleteFixture")
	defer span.End()

	item, err := s.getFixture(ctx, fixtureID)
	if err != nil {
		return err
	}
	if _, err := s.mutableEvent(ctx, principal, item.EventID); err != nil {
		return err
	}

	if err := s.fixtureRepo.Delete(ctx, fixtureID); err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}

	s.logger.InfoContext(ctx, "fixture deleted", "fixture_id", fixtureID, "event_id", item.EventID)

	return nil
}

func (s *FixtureService) getFixture(ctx context.Context, fixtureID string) (fixture.Fixture, error) {
	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	item, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	return item, nil
}

func (s *FixtureService) mutableEvent(ctx context.Context, principal user.Principal, eventID string) (event.Event, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	item, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}
	if err := authorizeEventMutation(principal, item); err != nil {
		return event.Event{}, err
	}
	if item.Completed() {
		return event.Event{}, fmt.Errorf("%w: event %s is completed and locked", ErrConflict, item.ID)
	}

	return item, nil
}
