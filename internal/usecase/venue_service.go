package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/domain/venue"
	"github.com/playfield/tournament-service/internal/platform/id"
	"github.com/playfield/tournament-service/internal/platform/logging"
)

type VenueInput struct {
	Name    string
	City    string
	Address string
}

type VenueService struct {
	venueRepo venue.Repository
	idGen     id.Generator
	logger    *logging.Logger
}

func NewVenueService(venueRepo venue.Repository, idGen id.Generator, logger *logging.Logger) *VenueService {
	if logger == nil {
		logger = logging.Default()
	}

	return &VenueService{venueRepo: venueRepo, idGen: idGen, logger: logger}
}

func (s *VenueService) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VenueService.ListVenues")
	defer span.End()

	items, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	return items, nil
}

func (s *VenueService) GetVenue(ctx context.Context, venueID string) (venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VenueService.GetVenue")
	defer span.End()

	venueID = strings.TrimSpace(venueID)
	if venueID == "" {
		return venue.Venue{}, fmt.Errorf("%w: venue id is required", ErrInvalidInput)
	}

	item, exists, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("get venue: %w", err)
	}
	if !exists {
		return venue.Venue{}, fmt.Errorf("%w: venue=%s", ErrNotFound, venueID)
	}

	return item, nil
}

func (s *VenueService) CreateVenue(ctx context.Context, principal user.Principal, input VenueInput) (venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VenueService.CreateVenue")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return venue.Venue{}, err
	}

	venueID, err := s.idGen.NewID()
	if err != nil {
		return venue.Venue{}, fmt.Errorf("generate venue id: %w", err)
	}

	item := venue.Venue{
		ID:      venueID,
		Name:    strings.TrimSpace(input.Name),
		City:    strings.TrimSpace(input.City),
		Address: strings.TrimSpace(input.Address),
	}
	if err := item.Validate(); err != nil {
		return venue.Venue{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.venueRepo.Create(ctx, item); err != nil {
		return venue.Venue{}, fmt.Errorf("create venue: %w", err)
	}

	s.logger.InfoContext(ctx, "venue created", "venue_id", item.ID, "city", item.City)

	return item, nil
}

func (s *VenueService) UpdateVenue(ctx context.Context, principal user.Principal, venueID string, input VenueInput) (venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VenueService.UpdateVenue")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return venue.Venue{}, err
	}

	item, err := s.GetVenue(ctx, venueID)
	if err != nil {
		return venue.Venue{}, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if city := strings.TrimSpace(input.City); city != "" {
		item.City = city
	}
	if address := strings.TrimSpace(input.Address); address != "" {
		item.Address = address
	}

	if err := s.venueRepo.Update(ctx, item); err != nil {
		return venue.Venue{}, fmt.Errorf("update venue: %w", err)
	}

	return item, nil
}
