package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/infrastructure/auth"
	"github.com/playfield/tournament-service/internal/infrastructure/repository/memory"
	"github.com/playfield/tournament-service/internal/platform/cache"
	"github.com/playfield/tournament-service/internal/platform/id"
	"github.com/playfield/tournament-service/internal/usecase"
)

// newTestRouter wires the full stack against a seeded in-memory store, the
// same shape the application composes at startup.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	store := memory.NewStore()
	require.NoError(t, memory.Seed(store, hasher.Hash))

	jwtManager, err := auth.NewJWTManager("test-secret")
	require.NoError(t, err)

	idGen := id.NewUUIDGenerator()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := memory.NewUserRepository(store)
	savedEvents := memory.NewSavedEventRepository(store)
	sports := memory.NewSportRepository(store)
	venues := memory.NewVenueRepository(store)
	events := memory.NewEventRepository(store)
	teams := memory.NewTeamRepository(store)
	players := memory.NewPlayerRepository(store)
	fixtures := memory.NewFixtureRepository(store)

	sportSvc := usecase.NewSportService(sports, cache.NewStore(time.Minute), idGen, nil)

	handler := NewHandler(
		usecase.NewAuthService(users, hasher, jwtManager, idGen, time.Hour, nil),
		usecase.NewUserService(users, savedEvents, events, nil),
		sportSvc,
		usecase.NewVenueService(venues, idGen, nil),
		usecase.NewEventService(events, sports, venues, teams, fixtures, idGen, nil),
		usecase.NewTeamService(events, teams, players, idGen, nil),
		usecase.NewPlayerService(events, teams, players, sportSvc, sport.BindLenient, idGen, nil),
		usecase.NewFixtureService(events, sports, teams, fixtures, venues, idGen, nil),
		usecase.NewDashboardService(events, teams, players, fixtures, sports, nil),
		logger,
	)

	return NewRouter(handler, jwtManager, logger, []string{"*"})
}

type testEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       json.RawMessage  `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) (int, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope testEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec.Code, envelope
}

func loginAs(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	status, envelope := doRequest(t, router, http.MethodPost, "/v1/auth/login", "",
		`{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, status)

	var session struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, sonic.Unmarshal(envelope.Data, &session))
	require.NotEmpty(t, session.AccessToken)
	return session.AccessToken
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	status, envelope := doRequest(t, router, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(envelope.Data), `"ok"`)
}

func TestRouter_AuthRequired(t *testing.T) {
	router := newTestRouter(t)

	t.Run("missing header", func(t *testing.T) {
		status, envelope := doRequest(t, router, http.MethodPost, "/v1/events", "", `{}`)
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, "UNAUTHENTICATED", envelope.Error.Status)
	})

	t.Run("malformed token", func(t *testing.T) {
		status, _ := doRequest(t, router, http.MethodPost, "/v1/events", "not-a-jwt", `{}`)
		require.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("public reads stay open", func(t *testing.T) {
		status, _ := doRequest(t, router, http.MethodGet, "/v1/events", "", "")
		require.Equal(t, http.StatusOK, status)
	})
}

func TestRouter_ManagerEventFlow(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "manager@playfield.local", "manager-password")

	status, envelope := doRequest(t, router, http.MethodPost, "/v1/events", token,
		`{"sportId":"`+memory.SeedSportFootballID+`","title":"Harbour League","startDate":"2026-10-01","venueId":"`+memory.SeedVenueStadiumID+`"}`)
	require.Equal(t, http.StatusCreated, status)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, sonic.Unmarshal(envelope.Data, &created))
	require.Equal(t, "upcoming", created.Status)

	status, envelope = doRequest(t, router, http.MethodPost, "/v1/events/"+created.ID+"/teams", token,
		`{"name":"Dock Rovers","city":"Mumbai"}`)
	require.Equal(t, http.StatusCreated, status)

	var team struct {
		ID string `json:"id"`
	}
	require.NoError(t, sonic.Unmarshal(envelope.Data, &team))

	// Declared stat fields arrive as strings and come back as numbers.
	status, envelope = doRequest(t, router, http.MethodPost, "/v1/teams/"+team.ID+"/players", token,
		`{"name":"J. D'Souza","details":{"forward":true,"goals":"12"}}`)
	require.Equal(t, http.StatusCreated, status)

	var player struct {
		Details map[string]any `json:"details"`
	}
	require.NoError(t, sonic.Unmarshal(envelope.Data, &player))
	require.EqualValues(t, 12, player.Details["goals"])

	status, _ = doRequest(t, router, http.MethodPut, "/v1/events/"+created.ID+"/status", token,
		`{"status":"completed"}`)
	require.Equal(t, http.StatusOK, status)

	// Completed events reject roster changes.
	status, envelope = doRequest(t, router, http.MethodPost, "/v1/events/"+created.ID+"/teams", token,
		`{"name":"Latecomers"}`)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "ALREADY_EXISTS", envelope.Error.Status)
}

func TestRouter_PublicRoleCannotManage(t *testing.T) {
	router := newTestRouter(t)

	status, envelope := doRequest(t, router, http.MethodPost, "/v1/auth/register", "",
		`{"username":"fan","email":"fan@example.com","password":"super-secret","role":"public"}`)
	require.Equal(t, http.StatusCreated, status)

	var session struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, sonic.Unmarshal(envelope.Data, &session))

	status, envelope = doRequest(t, router, http.MethodPost, "/v1/events", session.AccessToken,
		`{"sportId":"`+memory.SeedSportCricketID+`","title":"Fan Cup","startDate":"2026-10-01"}`)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "PERMISSION_DENIED", envelope.Error.Status)
}

func TestRouter_SavedEvents(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "manager@playfield.local", "manager-password")

	status, _ := doRequest(t, router, http.MethodPost, "/v1/events/"+memory.SeedEventID+"/save", token, "")
	require.Equal(t, http.StatusOK, status)

	status, envelope := doRequest(t, router, http.MethodGet, "/v1/me/saved-events", token, "")
	require.Equal(t, http.StatusOK, status)

	var saved []struct {
		ID string `json:"id"`
	}
	require.NoError(t, sonic.Unmarshal(envelope.Data, &saved))
	require.Len(t, saved, 1)
	require.Equal(t, memory.SeedEventID, saved[0].ID)
}

func TestRouter_UnknownJSONFieldRejected(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "admin@playfield.local", "admin-password")

	status, envelope := doRequest(t, router, http.MethodPost, "/v1/venues", token,
		`{"name":"New Ground","city":"Pune","surprise":true}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "INVALID_ARGUMENT", envelope.Error.Status)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/events", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
