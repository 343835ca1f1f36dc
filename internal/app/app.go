package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/playfield/tournament-service/internal/config"
	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/fixture"
	"github.com/playfield/tournament-service/internal/domain/player"
	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/domain/team"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/domain/venue"
	"github.com/playfield/tournament-service/internal/infrastructure/auth"
	"github.com/playfield/tournament-service/internal/infrastructure/repository/memory"
	"github.com/playfield/tournament-service/internal/infrastructure/repository/postgres"
	"github.com/playfield/tournament-service/internal/interfaces/httpapi"
	"github.com/playfield/tournament-service/internal/platform/cache"
	idgen "github.com/playfield/tournament-service/internal/platform/id"
	"github.com/playfield/tournament-service/internal/platform/logging"
	"github.com/playfield/tournament-service/internal/usecase"
)

type repositories struct {
	users       user.Repository
	savedEvents user.SavedEventRepository
	sports      sport.Repository
	venues      venue.Repository
	events      event.Repository
	teams       team.Repository
	players     player.Repository
	fixtures    fixture.Repository
}

// NewHTTPServer wires repositories, services and the HTTP router. The
// returned cleanup closes the database pool when Postgres is in use.
func NewHTTPServer(cfg config.Config, logger *logging.Logger, accessLogger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if accessLogger == nil {
		accessLogger = slog.Default()
	}

	hasher := auth.NewBcryptHasher(0)

	repos, cleanup, err := buildRepositories(cfg, logger, hasher)
	if err != nil {
		return nil, nil, err
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWTSecret)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	idGen := idgen.NewUUIDGenerator()

	var schemaCache *cache.Store
	if cfg.CacheEnabled {
		schemaCache = cache.NewStore(cfg.CacheTTL)
	}

	authSvc := usecase.NewAuthService(repos.users, hasher, jwtManager, idGen, cfg.TokenTTL, logger)
	userSvc := usecase.NewUserService(repos.users, repos.savedEvents, repos.events, logger)
	sportSvc := usecase.NewSportService(repos.sports, schemaCache, idGen, logger)
	venueSvc := usecase.NewVenueService(repos.venues, idGen, logger)
	eventSvc := usecase.NewEventService(repos.events, repos.sports, repos.venues, repos.teams, repos.fixtures, idGen, logger)
	teamSvc := usecase.NewTeamService(repos.events, repos.teams, repos.players, idGen, logger)
	playerSvc := usecase.NewPlayerService(repos.events, repos.teams, repos.players, sportSvc, cfg.BindingMode, idGen, logger)
	fixtureSvc := usecase.NewFixtureService(repos.events, repos.sports, repos.teams, repos.fixtures, repos.venues, idGen, logger)
	dashboardSvc := usecase.NewDashboardService(repos.events, repos.teams, repos.players, repos.fixtures, repos.sports, logger)

	handler := httpapi.NewHandler(
		authSvc,
		userSvc,
		sportSvc,
		venueSvc,
		eventSvc,
		teamSvc,
		playerSvc,
		fixtureSvc,
		dashboardSvc,
		accessLogger,
	)
	router := httpapi.NewRouter(handler, jwtManager, accessLogger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger, hasher *auth.BcryptHasher) (repositories, func() error, error) {
	if cfg.UseInMemoryStore() {
		store := memory.NewStore()
		if err := memory.Seed(store, hasher.Hash); err != nil {
			return repositories{}, nil, fmt.Errorf("seed in-memory store: %w", err)
		}
		logger.Info("storage ready", "backend", "memory", "seeded", true)

		return repositories{
			users:       memory.NewUserRepository(store),
			savedEvents: memory.NewSavedEventRepository(store),
			sports:      memory.NewSportRepository(store),
			venues:      memory.NewVenueRepository(store),
			events:      memory.NewEventRepository(store),
			teams:       memory.NewTeamRepository(store),
			players:     memory.NewPlayerRepository(store),
			fixtures:    memory.NewFixtureRepository(store),
		}, func() error { return nil }, nil
	}

	db, err := openPostgres(cfg.DBURL)
	if err != nil {
		return repositories{}, nil, err
	}
	logger.Info("storage ready", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		users:       postgres.NewUserRepository(db),
		savedEvents: postgres.NewSavedEventRepository(db),
		sports:      postgres.NewSportRepository(db),
		venues:      postgres.NewVenueRepository(db),
		events:      postgres.NewEventRepository(db),
		teams:       postgres.NewTeamRepository(db),
		players:     postgres.NewPlayerRepository(db),
		fixtures:    postgres.NewFixtureRepository(db),
	}, db.Close, nil
}
