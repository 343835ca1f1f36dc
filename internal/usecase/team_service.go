package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/player"
	"github.com/playfield/tournament-service/internal/domain/team"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/platform/id"
	"github.com/playfield/tournament-service/internal/platform/logging"
)

type TeamInput struct {
	Name      string
	City      string
	CoachName string
	CaptainID *string
}

type TeamService struct {
	eventRepo  event.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	idGen      id.Generator
	logger     *logging.Logger
}

func NewTeamService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		eventRepo:  eventRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *TeamService) AddTeam(ctx context.Context, principal user.Principal, eventID string, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddTeam")
	defer span.End()

	eventItem, err := s.mutableEvent(ctx, principal, eventID)
	if err != nil {
		return team.Team{}, err
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:        teamID,
		EventID:   eventItem.ID,
		Name:      strings.TrimSpace(input.Name),
		City:      strings.TrimSpace(input.City),
		CoachName: strings.TrimSpace(input.CoachName),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team added", "team_id", item.ID, "event_id", eventItem.ID)

	return item, nil
}

func (s *TeamService) ListTeamsByEvent(ctx context.Context, eventID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamsByEvent")
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

	items, err := s.teamRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

// UpdateTeam edits team fields. A non-nil CaptainID must name a player on
// this team; an empty one clears the captain.
func (s *TeamService) UpdateTeam(ctx context.Context, principal user.Principal, teamID string, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if _, err := s.mutableEvent(ctx, principal, item.EventID); err != nil {
		return team.Team{}, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if city := strings.TrimSpace(input.City); city != "" {
		item.City = city
	}
	if coach := strings.TrimSpace(input.CoachName); coach != "" {
		item.CoachName = coach
	}
	if input.CaptainID != nil {
		captainID := strings.TrimSpace(*input.CaptainID)
		if captainID == "" {
			item.CaptainID = nil
		} else {
			candidate, exists, err := s.playerRepo.GetByID(ctx, captainID)
			if err != nil {
				return team.Team{}, fmt.Errorf("get captain: %w", err)
			}
			if !exists || candidate.TeamID != item.ID {
				return team.Team{}, fmt.Errorf("%w: captain must be a player of team %s", ErrInvalidInput, item.ID)
			}
			item.CaptainID = &captainID
		}
	}

	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return item, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, principal user.Principal, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if _, err := s.mutableEvent(ctx, principal, item.EventID); err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", teamID, "event_id", item.EventID)

	return nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

// mutableEvent loads an event, checks ownership and rejects writes against
// completed events.
func (s *TeamService) mutableEvent(ctx context.Context, principal user.Principal, eventID string) (event.Event, error) {
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
