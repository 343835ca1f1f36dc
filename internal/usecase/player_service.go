package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/player"
	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/domain/team"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/platform/id"
	"github.com/playfield/tournament-service/internal/platform/logging"
)

// SchemaProvider resolves the config schema for a sport. SportService
// implements it; tests use a literal.
type SchemaProvider interface {
	GetSchema(ctx context.Context, sportID string) (sport.ConfigSchema, error)
}

type PlayerInput struct {
	Name    string
	Details map[string]any
}

// PlayerService owns the write path for players, which is where the dynamic
// details document meets the sport schema: every submitted document is bound
// before it is persisted.
type PlayerService struct {
	eventRepo  event.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	schemas    SchemaProvider
	bindMode   sport.BindMode
	idGen      id.Generator
	logger     *logging.Logger
}

func NewPlayerService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	schemas SchemaProvider,
	bindMode sport.BindMode,
	idGen id.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		eventRepo:  eventRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		schemas:    schemas,
		bindMode:   bindMode,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *PlayerService) AddPlayer(ctx context.Context, principal user.Principal, teamID string, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddPlayer")
	defer span.End()

	teamItem, eventItem, err := s.mutableTeam(ctx, principal, teamID)
	if err != nil {
		return player.Player{}, err
	}

	details, err := s.bindDetails(ctx, eventItem.SportID, input.Details)
	if err != nil {
		return player.Player{}, err
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := player.Player{
		ID:      playerID,
		TeamID:  teamItem.ID,
		Name:    strings.TrimSpace(input.Name),
		Details: details,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player added", "player_id", item.ID, "team_id", teamItem.ID)

	return item, nil
}

func (s *PlayerService) ListPlayersByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayersByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

// UpdatePlayer rebinds the submitted details document in full when present;
// partial detail merges are not supported.
func (s *PlayerService) UpdatePlayer(ctx context.Context, principal user.Principal, playerID string, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}
	_, eventItem, err := s.mutableTeam(ctx, principal, item.TeamID)
	if err != nil {
		return player.Player{}, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if input.Details != nil {
		details, err := s.bindDetails(ctx, eventItem.SportID, input.Details)
		if err != nil {
			return player.Player{}, err
		}
		item.Details = details
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, principal user.Principal, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if _, _, err := s.mutableTeam(ctx, principal, item.TeamID); err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID, "team_id", item.TeamID)

	return nil
}

func (s *PlayerService) bindDetails(ctx context.Context, sportID string, submitted map[string]any) (map[string]any, error) {
	schema, err := s.schemas.GetSchema(ctx, sportID)
	if err != nil {
		return nil, err
	}

	bound, err := schema.Bind(submitted, s.bindMode)
	if err != nil {
		var bindErr *sport.BindError
		if errors.As(err, &bindErr) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, bindErr)
		}
		return nil, fmt.Errorf("bind player details: %w", err)
	}

	return bound, nil
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

// mutableTeam resolves the team and its owning event, then applies the same
// ownership and completed-event checks as any other event-scoped write.
func (s *PlayerService) mutableTeam(ctx context.Context, principal user.Principal, teamID string) (team.Team, event.Event, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, event.Event{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	teamItem, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, event.Event{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, event.Event{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	eventItem, exists, err := s.eventRepo.GetByID(ctx, teamItem.EventID)
	if err != nil {
		return team.Team{}, event.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return team.Team{}, event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, teamItem.EventID)
	}
	if err := authorizeEventMutation(principal, eventItem); err != nil {
		return team.Team{}, event.Event{}, err
	}
	if eventItem.Completed() {
		return team.Team{}, event.Event{}, fmt.Errorf("%w: event %s is completed and locked", ErrConflict, eventItem.ID)
	}

	return teamItem, eventItem, nil
}
