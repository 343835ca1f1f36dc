package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/domain/storage"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/platform/cache"
	"github.com/playfield/tournament-service/internal/platform/id"
	"github.com/playfield/tournament-service/internal/platform/logging"
)

type CreateSportInput struct {
	Name   string
	Type   string
	Schema sport.ConfigSchema
}

// SportService is the schema registry surface. Schema reads go through a
// small TTL cache since sports are reference data mutated almost never.
type SportService struct {
	sportRepo sport.Repository
	schemas   *cache.Store
	flight    cache.Group
	idGen     id.Generator
	logger    *logging.Logger
}

func NewSportService(
	sportRepo sport.Repository,
	schemas *cache.Store,
	idGen id.Generator,
	logger *logging.Logger,
) *SportService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SportService{
		sportRepo: sportRepo,
		schemas:   schemas,
		idGen:     idGen,
		logger:    logger,
	}
}

func (s *SportService) ListSports(ctx context.Context) ([]sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.ListSports")
	defer span.End()

	items, err := s.sportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}

	return items, nil
}

func (s *SportService) GetSport(ctx context.Context, sportID string) (sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.GetSport")
	defer span.End()

	sportID = strings.TrimSpace(sportID)
	if sportID == "" {
		return sport.Sport{}, fmt.Errorf("%w: sport id is required", ErrInvalidInput)
	}

	item, exists, err := s.sportRepo.GetByID(ctx, sportID)
	if err != nil {
		return sport.Sport{}, fmt.Errorf("get sport: %w", err)
	}
	if !exists {
		return sport.Sport{}, fmt.Errorf("%w: sport=%s", ErrNotFound, sportID)
	}

	return item, nil
}

func (s *SportService) CreateSport(ctx context.Context, principal user.Principal, input CreateSportInput) (sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.CreateSport")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return sport.Sport{}, err
	}

	sportID, err := s.idGen.NewID()
	if err != nil {
		return sport.Sport{}, fmt.Errorf("generate sport id: %w", err)
	}

	item := sport.Sport{
		ID:           sportID,
		Name:         strings.TrimSpace(input.Name),
		Type:         strings.ToLower(strings.TrimSpace(input.Type)),
		ConfigSchema: input.Schema,
	}
	if err := item.Validate(); err != nil {
		return sport.Sport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.sportRepo.Create(ctx, item); err != nil {
		if conflict, ok := storage.AsConflict(err); ok {
			return sport.Sport{}, fmt.Errorf("%w: sport %s already exists", ErrConflict, conflict.Field)
		}
		return sport.Sport{}, fmt.Errorf("create sport: %w", err)
	}

	s.logger.InfoContext(ctx, "sport created", "sport_id", item.ID, "name", item.Name, "type", item.Type)

	return item, nil
}

// GetSchema returns the declarative config schema for one sport.
func (s *SportService) GetSchema(ctx context.Context, sportID string) (sport.ConfigSchema, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.GetSchema")
	defer span.End()

	sportID = strings.TrimSpace(sportID)
	if sportID == "" {
		return sport.ConfigSchema{}, fmt.Errorf("%w: sport id is required", ErrInvalidInput)
	}

	if cached, ok := s.schemas.Get(ctx, schemaCacheKey(sportID)); ok {
		if schema, ok := cached.(sport.ConfigSchema); ok {
			return schema, nil
		}
	}

	// Concurrent misses for the same sport load the schema once.
	loaded, err, _ := s.flight.Do(schemaCacheKey(sportID), func() (any, error) {
		schema, exists, err := s.sportRepo.GetSchema(ctx, sportID)
		if err != nil {
			return nil, fmt.Errorf("get sport schema: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: sport=%s", ErrNotFound, sportID)
		}

		s.schemas.Set(ctx, schemaCacheKey(sportID), schema)
		return schema, nil
	})
	if err != nil {
		return sport.ConfigSchema{}, err
	}

	schema, ok := loaded.(sport.ConfigSchema)
	if !ok {
		return sport.ConfigSchema{}, fmt.Errorf("get sport schema: unexpected cached type %T", loaded)
	}

	return schema, nil
}

// RegisterSchema upserts a sport's schema document. Idempotent, unversioned.
func (s *SportService) RegisterSchema(ctx context.Context, principal user.Principal, sportID string, schema sport.ConfigSchema) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportService.RegisterSchema")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return err
	}
	if _, err := s.GetSport(ctx, sportID); err != nil {
		return err
	}

	if err := s.sportRepo.RegisterSchema(ctx, sportID, schema); err != nil {
		return fmt.Errorf("register sport schema: %w", err)
	}

	s.schemas.Invalidate(ctx, schemaCacheKey(sportID))
	s.logger.InfoContext(ctx, "sport schema registered", "sport_id", sportID)

	return nil
}

func schemaCacheKey(sportID string) string {
	return "sport-schema:" + sportID
}
