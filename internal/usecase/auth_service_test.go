package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/playfield/tournament-service/internal/infrastructure/repository/memory"
)

func newAuthService(store *memory.Store) *AuthService {
	return NewAuthService(
		memory.NewUserRepository(store),
		plainHasher{},
		staticIssuer{},
		&seqIDGenerator{prefix: "user"},
		time.Hour,
		nil,
	)
}

func TestAuthService_Register(t *testing.T) {
	store := seededStore(t)
	service := newAuthService(store)

	session, err := service.Register(t.Context(), RegisterInput{
		Username: "priya",
		Email:    "Priya@Example.COM",
		Password: "s3cret-pass",
		Role:     "manager",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if session.User.Email != "priya@example.com" {
		t.Fatalf("expected normalized email, got %q", session.User.Email)
	}
	if session.AccessToken != "token-"+session.User.ID {
		t.Fatalf("unexpected access token %q", session.AccessToken)
	}
}

func TestAuthService_Register_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	store := seededStore(t)
	service := newAuthService(store)

	if _, err := service.Register(t.Context(), RegisterInput{
		Username: "first",
		Email:    "taken@example.com",
		Password: "password-1",
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := service.Register(t.Context(), RegisterInput{
		Username: "second",
		Email:    "TAKEN@example.com",
		Password: "password-2",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthService_Register_RejectsAdminRole(t *testing.T) {
	service := newAuthService(seededStore(t))

	_, err := service.Register(t.Context(), RegisterInput{
		Username: "sneaky",
		Email:    "sneaky@example.com",
		Password: "password-1",
		Role:     "admin",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	service := newAuthService(seededStore(t))

	_, err := service.Register(t.Context(), RegisterInput{
		Username: "short",
		Email:    "short@example.com",
		Password: "short",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	store := seededStore(t)
	service := newAuthService(store)

	session, err := service.Login(t.Context(), LoginInput{
		Email:    "Manager@Playfield.local",
		Password: "manager-password",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.User.ID != memory.SeedManagerID {
		t.Fatalf("unexpected user id %q", session.User.ID)
	}
}

func TestAuthService_Login_BadCredentialsReportIdentically(t *testing.T) {
	service := newAuthService(seededStore(t))

	_, wrongPassword := service.Login(t.Context(), LoginInput{
		Email:    "manager@playfield.local",
		Password: "nope",
	})
	_, wrongEmail := service.Login(t.Context(), LoginInput{
		Email:    "nobody@playfield.local",
		Password: "manager-password",
	})

	if !errors.Is(wrongPassword, ErrUnauthenticated) || !errors.Is(wrongEmail, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for both, got %v and %v", wrongPassword, wrongEmail)
	}
	if wrongPassword.Error() != wrongEmail.Error() {
		t.Fatalf("expected identical messages, got %q vs %q", wrongPassword, wrongEmail)
	}
}
