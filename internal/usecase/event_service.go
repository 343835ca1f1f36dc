package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/fixture"
	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/domain/team"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/domain/venue"
	"github.com/playfield/tournament-service/internal/platform/id"
	"github.com/playfield/tournament-service/internal/platform/logging"
)

type CreateEventInput struct {
	SportID     string
	Title       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	VenueID     string
	RulesConfig map[string]any
}

type UpdateEventInput struct {
	Title       string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	VenueID     *string
	RulesConfig map[string]any
}

// EventDetail is the public detail view: the event plus everything hanging
// off it.
type EventDetail struct {
	Event    event.Event
	Sport    sport.Sport
	Venue    *venue.Venue
	Teams    []team.Team
	Fixtures []fixture.Fixture
}

type EventService struct {
	eventRepo   event.Repository
	sportRepo   sport.Repository
	venueRepo   venue.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	idGen       id.Generator
	logger      *logging.Logger

	now func() time.Time
}

func NewEventService(
	eventRepo event.Repository,
	sportRepo sport.Repository,
	venueRepo venue.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *EventService {
	if logger == nil {
		logger = logging.Default()
	}

	return &EventService{
		eventRepo:   eventRepo,
		sportRepo:   sportRepo,
		venueRepo:   venueRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, principal user.Principal, input CreateEventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.CreateEvent")
	defer span.End()

	if err := requireManager(principal); err != nil {
		return event.Event{}, err
	}

	sportID := strings.TrimSpace(input.SportID)
	if sportID == "" {
		return event.Event{}, fmt.Errorf("%w: sport id is required", ErrInvalidInput)
	}
	if _, exists, err := s.sportRepo.GetByID(ctx, sportID); err != nil {
		return event.Event{}, fmt.Errorf("get sport: %w", err)
	} else if !exists {
		return event.Event{}, fmt.Errorf("%w: sport=%s", ErrNotFound, sportID)
	}

	var venueID *string
	if trimmed := strings.TrimSpace(input.VenueID); trimmed != "" {
		if _, exists, err := s.venueRepo.GetByID(ctx, trimmed); err != nil {
			return event.Event{}, fmt.Errorf("get venue: %w", err)
		} else if !exists {
			return event.Event{}, fmt.Errorf("%w: venue=%s", ErrNotFound, trimmed)
		}
		venueID = &trimmed
	}

	eventID, err := s.idGen.NewID()
	if err != nil {
		return event.Event{}, fmt.Errorf("generate event id: %w", err)
	}

	item := event.Event{
		ID:          eventID,
		SportID:     sportID,
		ManagerID:   principal.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      event.StatusUpcoming,
		VenueID:     venueID,
		RulesConfig: input.RulesConfig,
	}
	if err := item.Validate(); err != nil {
		return event.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.eventRepo.Create(ctx, item); err != nil {
		return event.Event{}, fmt.Errorf("create event: %w", err)
	}

	s.logger.InfoContext(ctx, "event created", "event_id", item.ID, "sport_id", sportID, "manager_id", principal.UserID)

	return item, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, principal user.Principal, eventID string, input UpdateEventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.UpdateEvent")
	defer span.End()

	item, err := s.getEvent(ctx, eventID)
	if err != nil {
		return event.Event{}, err
	}
	if err := authorizeEventMutation(principal, item); err != nil {
		return event.Event{}, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		item.Title = title
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		item.Description = desc
	}
	if input.StartDate != nil {
		item.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		item.EndDate = input.EndDate
	}
	if input.VenueID != nil {
		trimmed := strings.TrimSpace(*input.VenueID)
		if trimmed == "" {
			item.VenueID = nil
		} else {
			if _, exists, err := s.venueRepo.GetByID(ctx, trimmed); err != nil {
				return event.Event{}, fmt.Errorf("get venue: %w", err)
			} else if !exists {
				return event.Event{}, fmt.Errorf("%w: venue=%s", ErrNotFound, trimmed)
			}
			item.VenueID = &trimmed
		}
	}
	if input.RulesConfig != nil {
		item.RulesConfig = input.RulesConfig
	}

	if err := item.Validate(); err != nil {
		return event.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.eventRepo.Update(ctx, item); err != nil {
		return event.Event{}, fmt.Errorf("update event: %w", err)
	}

	return item, nil
}

// TransitionStatus moves an event forward through upcoming, live, completed.
// Skipping live is fine; moving backwards is a conflict.
func (s *EventService) TransitionStatus(ctx context.Context, principal user.Principal, eventID, next string) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.TransitionStatus")
	defer span.End()

	item, err := s.getEvent(ctx, eventID)
	if err != nil {
		return event.Event{}, err
	}
	if err := authorizeEventMutation(principal, item); err != nil {
		return event.Event{}, err
	}

	next = strings.ToLower(strings.TrimSpace(next))
	if !event.ValidStatus(next) {
		return event.Event{}, fmt.Errorf("%w: status %q is not one of upcoming, live, completed", ErrInvalidInput, next)
	}
	if !event.CanTransition(item.Status, next) {
		return event.Event{}, fmt.Errorf("%w: cannot move event from %s to %s", ErrConflict, item.Status, next)
	}

	item.Status = next
	if err := s.eventRepo.Update(ctx, item); err != nil {
		return event.Event{}, fmt.Errorf("update event status: %w", err)
	}

	s.logger.InfoContext(ctx, "event status changed", "event_id", item.ID, "status", next)

	return item, nil
}

// DeleteEvent removes the event and cascades to its teams, their players and
// its fixtures. The repository performs the cascade atomically.
func (s *EventService) DeleteEvent(ctx context.Context, principal user.Principal, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.DeleteEvent")
	defer span.End()

	item, err := s.getEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if err := authorizeEventMutation(principal, item); err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.InfoContext(ctx, "event deleted", "event_id", eventID, "manager_id", item.ManagerID)

	return nil
}

func (s *EventService) ListEvents(ctx context.Context, filter event.Filter) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListEvents")
	defer span.End()

	if filter.Status != "" && !event.ValidStatus(filter.Status) {
		return nil, fmt.Errorf("%w: status %q is not one of upcoming, live, completed", ErrInvalidInput, filter.Status)
	}

	items, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return items, nil
}

// DateWindow translates the public filter keywords into an inclusive upper
// bound on the event start date.
func (s *EventService) DateWindow(keyword string) (*time.Time, error) {
	now := s.now()
	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case "":
		return nil, nil
	case "today":
		bound := now.AddDate(0, 0, 1)
		return &bound, nil
	case "week":
		bound := now.AddDate(0, 0, 7)
		return &bound, nil
	case "month":
		bound := now.AddDate(0, 1, 0)
		return &bound, nil
	default:
		return nil, fmt.Errorf("%w: date filter %q is not one of today, week, month", ErrInvalidInput, keyword)
	}
}

// GetEventDetail assembles the public detail view. The child reads are
// independent, so they run concurrently.
func (s *EventService) GetEventDetail(ctx context.Context, eventID string) (EventDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.GetEventDetail")
	defer span.End()

	item, err := s.getEvent(ctx, eventID)
	if err != nil {
		return EventDetail{}, err
	}

	detail := EventDetail{Event: item}

	var sportErr, venueErr, teamsErr, fixturesErr error
	var wg conc.WaitGroup
	wg.Go(func() {
		sportItem, exists, err := s.sportRepo.GetByID(ctx, item.SportID)
		if err != nil {
			sportErr = fmt.Errorf("get sport: %w", err)
			return
		}
		if !exists {
			sportErr = fmt.Errorf("%w: sport=%s", ErrNotFound, item.SportID)
			return
		}
		detail.Sport = sportItem
	})
	wg.Go(func() {
		if item.VenueID == nil {
			return
		}
		venueItem, exists, err := s.venueRepo.GetByID(ctx, *item.VenueID)
		if err != nil {
			venueErr = fmt.Errorf("get venue: %w", err)
			return
		}
		if exists {
			detail.Venue = &venueItem
		}
	})
	wg.Go(func() {
		teams, err := s.teamRepo.ListByEvent(ctx, item.ID)
		if err != nil {
			teamsErr = fmt.Errorf("list teams: %w", err)
			return
		}
		detail.Teams = teams
	})
	wg.Go(func() {
		fixtures, err := s.fixtureRepo.ListByEvent(ctx, item.ID)
		if err != nil {
			fixturesErr = fmt.Errorf("list fixtures: %w", err)
			return
		}
		detail.Fixtures = fixtures
	})
	wg.Wait()

	for _, err := range []error{sportErr, venueErr, teamsErr, fixturesErr} {
		if err != nil {
			return EventDetail{}, err
		}
	}

	return detail, nil
}

func (s *EventService) getEvent(ctx context.Context, eventID string) (event.Event, error) {
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

	return item, nil
}
