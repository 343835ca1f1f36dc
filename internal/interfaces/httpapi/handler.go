package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/usecase"
)

type Handler struct {
	authService      *usecase.AuthService
	userService      *usecase.UserService
	sportService     *usecase.SportService
	venueService     *usecase.VenueService
	eventService     *usecase.EventService
	teamService      *usecase.TeamService
	playerService    *usecase.PlayerService
	fixtureService   *usecase.FixtureService
	dashboardService *usecase.DashboardService
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	userService *usecase.UserService,
	sportService *usecase.SportService,
	venueService *usecase.VenueService,
	eventService *usecase.EventService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	fixtureService *usecase.FixtureService,
	dashboardService *usecase.DashboardService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		authService:      authService,
		userService:      userService,
		sportService:     sportService,
		venueService:     venueService,
		eventService:     eventService,
		teamService:      teamService,
		playerService:    playerService,
		fixtureService:   fixtureService,
		dashboardService: dashboardService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(r *http.Request, target any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) requirePrincipal(ctx context.Context, w http.ResponseWriter) (user.Principal, bool) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthenticated))
		return user.Principal{}, false
	}
	return principal, true
}
