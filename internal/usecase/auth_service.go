package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/playfield/tournament-service/internal/domain/storage"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/platform/id"
	"github.com/playfield/tournament-service/internal/platform/logging"
)

// PasswordHasher hides the hashing scheme (bcrypt in production) from the
// service so tests can swap in a cheap fake.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}

// TokenIssuer mints access tokens for a verified principal.
type TokenIssuer interface {
	Issue(principal user.Principal, expiry time.Time) (string, error)
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthSession struct {
	User        user.User
	AccessToken string
	ExpiresAt   time.Time
}

type AuthService struct {
	userRepo user.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	idGen    id.Generator
	tokenTTL time.Duration
	logger   *logging.Logger

	now func() time.Time
}

func NewAuthService(
	userRepo user.Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	idGen id.Generator,
	tokenTTL time.Duration,
	logger *logging.Logger,
) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		idGen:    idGen,
		tokenTTL: tokenTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates an account. Self-registration only hands out manager and
// public roles; admins are provisioned out of band.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthSession, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	username := strings.TrimSpace(input.Username)
	email := user.NormalizeEmail(input.Email)
	if username == "" {
		return AuthSession{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if email == "" || !strings.Contains(email, "@") {
		return AuthSession{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(input.Password) < 8 {
		return AuthSession{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	role := input.Role
	if role == "" {
		role = user.RolePublic
	}
	if role != user.RoleManager && role != user.RolePublic {
		return AuthSession{}, fmt.Errorf("%w: role must be manager or public", ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return AuthSession{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return AuthSession{}, fmt.Errorf("generate user id: %w", err)
	}

	item := user.User{
		ID:           userID,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Avatar:       user.DefaultAvatar,
	}
	if err := item.Validate(); err != nil {
		return AuthSession{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, item); err != nil {
		if conflict, ok := storage.AsConflict(err); ok {
			return AuthSession{}, fmt.Errorf("%w: %s is already taken", ErrConflict, conflict.Field)
		}
		return AuthSession{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", item.ID, "role", item.Role)

	return s.session(item)
}

// Login verifies credentials by normalized email and mints a token. Wrong
// email and wrong password report identically.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthSession, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	email := user.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return AuthSession{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return AuthSession{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists {
		return AuthSession{}, fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}
	if err := s.hasher.Compare(item.PasswordHash, input.Password); err != nil {
		return AuthSession{}, fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}

	return s.session(item)
}

func (s *AuthService) session(item user.User) (AuthSession, error) {
	expiresAt := s.now().Add(s.tokenTTL)
	token, err := s.issuer.Issue(user.Principal{UserID: item.ID, Role: item.Role}, expiresAt)
	if err != nil {
		return AuthSession{}, fmt.Errorf("issue access token: %w", err)
	}

	return AuthSession{User: item, AccessToken: token, ExpiresAt: expiresAt}, nil
}
