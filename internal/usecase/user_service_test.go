package usecase

import (
	"errors"
	"testing"

	"github.com/playfield/tournament-service/internal/infrastructure/repository/memory"
)

func newUserService(store *memory.Store) *UserService {
	return NewUserService(
		memory.NewUserRepository(store),
		memory.NewSavedEventRepository(store),
		memory.NewEventRepository(store),
		nil,
	)
}

func TestUserService_SaveEvent_IsIdempotent(t *testing.T) {
	store := seededStore(t)
	service := newUserService(store)
	principal := managerPrincipal()

	for range 3 {
		if err := service.SaveEvent(t.Context(), principal, memory.SeedEventID); err != nil {
			t.Fatalf("save event failed: %v", err)
		}
	}

	saved, err := service.ListSavedEvents(t.Context(), principal)
	if err != nil {
		t.Fatalf("list saved events failed: %v", err)
	}
	if len(saved) != 1 || saved[0].ID != memory.SeedEventID {
		t.Fatalf("expected single saved event, got %v", saved)
	}
}

func TestUserService_UnsaveEvent(t *testing.T) {
	store := seededStore(t)
	service := newUserService(store)
	principal := managerPrincipal()

	if err := service.SaveEvent(t.Context(), principal, memory.SeedEventID); err != nil {
		t.Fatalf("save event failed: %v", err)
	}
	if err := service.UnsaveEvent(t.Context(), principal, memory.SeedEventID); err != nil {
		t.Fatalf("unsave event failed: %v", err)
	}
	// Unsaving again stays a no-op.
	if err := service.UnsaveEvent(t.Context(), principal, memory.SeedEventID); err != nil {
		t.Fatalf("second unsave failed: %v", err)
	}

	saved, err := service.ListSavedEvents(t.Context(), principal)
	if err != nil {
		t.Fatalf("list saved events failed: %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("expected no saved events, got %v", saved)
	}
}

func TestUserService_SaveEvent_UnknownEvent(t *testing.T) {
	service := newUserService(seededStore(t))

	err := service.SaveEvent(t.Context(), managerPrincipal(), "missing-event")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_ListSavedEvents_SkipsDeletedEvents(t *testing.T) {
	store := seededStore(t)
	service := newUserService(store)
	principal := managerPrincipal()

	if err := service.SaveEvent(t.Context(), principal, memory.SeedEventID); err != nil {
		t.Fatalf("save event failed: %v", err)
	}
	if err := newEventService(store).DeleteEvent(t.Context(), principal, memory.SeedEventID); err != nil {
		t.Fatalf("delete event failed: %v", err)
	}

	saved, err := service.ListSavedEvents(t.Context(), principal)
	if err != nil {
		t.Fatalf("list saved events failed: %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("expected stale saves dropped, got %v", saved)
	}
}

func TestUserService_UpdateProfile_DuplicateEmailConflicts(t *testing.T) {
	store := seededStore(t)
	service := newUserService(store)

	_, err := service.UpdateProfile(t.Context(), managerPrincipal(), UpdateProfileInput{
		Email: "ADMIN@playfield.local",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserService_UpdateProfile_KeepsUnsetFields(t *testing.T) {
	store := seededStore(t)
	service := newUserService(store)

	updated, err := service.UpdateProfile(t.Context(), managerPrincipal(), UpdateProfileInput{
		Avatar: "custom.png",
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Avatar != "custom.png" {
		t.Fatalf("unexpected avatar %q", updated.Avatar)
	}
	if updated.Username != "citymanager" || updated.Email != "manager@playfield.local" {
		t.Fatalf("expected untouched fields kept, got %v", updated)
	}
}
