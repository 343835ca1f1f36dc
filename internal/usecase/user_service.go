package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/storage"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/platform/logging"
)

type UpdateProfileInput struct {
	Username string
	Email    string
	Avatar   string
}

type UserService struct {
	userRepo  user.Repository
	savedRepo user.SavedEventRepository
	eventRepo event.Repository
	logger    *logging.Logger
}

func NewUserService(
	userRepo user.Repository,
	savedRepo user.SavedEventRepository,
	eventRepo event.Repository,
	logger *logging.Logger,
) *UserService {
	if logger == nil {
		logger = logging.Default()
	}

	return &UserService{
		userRepo:  userRepo,
		savedRepo: savedRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.GetProfile")
	defer span.End()

	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	return item, nil
}

// UpdateProfile lets a user change their own username, email and avatar
// reference. Empty fields keep their current value.
func (s *UserService) UpdateProfile(ctx context.Context, principal user.Principal, input UpdateProfileInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.UpdateProfile")
	defer span.End()

	item, err := s.GetProfile(ctx, principal.UserID)
	if err != nil {
		return user.User{}, err
	}

	if username := strings.TrimSpace(input.Username); username != "" {
		item.Username = username
	}
	if email := user.NormalizeEmail(input.Email); email != "" {
		if !strings.Contains(email, "@") {
			return user.User{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
		}
		item.Email = email
	}
	if avatar := strings.TrimSpace(input.Avatar); avatar != "" {
		item.Avatar = avatar
	}

	if err := s.userRepo.Update(ctx, item); err != nil {
		if conflict, ok := storage.AsConflict(err); ok {
			return user.User{}, fmt.Errorf("%w: %s is already taken", ErrConflict, conflict.Field)
		}
		return user.User{}, fmt.Errorf("update user: %w", err)
	}

	return item, nil
}

// SaveEvent bookmarks an event for the caller. Saving an already saved event
// is a no-op: the relation has set semantics.
func (s *UserService) SaveEvent(ctx context.Context, principal user.Principal, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.SaveEvent")
	defer span.End()

	if principal.UserID == "" {
		return fmt.Errorf("%w: caller identity is required", ErrUnauthenticated)
	}
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return err
	}

	if err := s.savedRepo.Save(ctx, principal.UserID, eventID); err != nil {
		return fmt.Errorf("save event: %w", err)
	}

	return nil
}

func (s *UserService) UnsaveEvent(ctx context.Context, principal user.Principal, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.UnsaveEvent")
	defer span.End()

	if principal.UserID == "" {
		return fmt.Errorf("%w: caller identity is required", ErrUnauthenticated)
	}
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return err
	}

	if err := s.savedRepo.Unsave(ctx, principal.UserID, eventID); err != nil {
		return fmt.Errorf("unsave event: %w", err)
	}

	return nil
}

func (s *UserService) ListSavedEvents(ctx context.Context, principal user.Principal) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.ListSavedEvents")
	defer span.End()

	if principal.UserID == "" {
		return nil, fmt.Errorf("%w: caller identity is required", ErrUnauthenticated)
	}

	eventIDs, err := s.savedRepo.ListEventIDs(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("list saved event ids: %w", err)
	}

	out := make([]event.Event, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		item, exists, err := s.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("get saved event: %w", err)
		}
		if !exists {
			// The event was deleted after being saved; skip the stale id.
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (s *UserService) getEvent(ctx context.Context, eventID string) (event.Event, error) {
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
