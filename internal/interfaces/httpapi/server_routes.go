package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)

	mux.HandleFunc("GET /v1/stats", handler.GetPublicStats)

	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("GET /v1/sports/{sportID}", handler.GetSport)
	mux.HandleFunc("GET /v1/sports/{sportID}/schema", handler.GetSportSchema)

	mux.HandleFunc("GET /v1/venues", handler.ListVenues)
	mux.HandleFunc("GET /v1/venues/{venueID}", handler.GetVenue)

	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/events/{eventID}", handler.GetEvent)
	mux.HandleFunc("GET /v1/events/{eventID}/teams", handler.ListTeamsByEvent)
	mux.HandleFunc("GET /v1/events/{eventID}/fixtures", handler.ListFixturesByEvent)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListPlayersByTeam)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedAdminRoutes(mux, handler, verifier)
	registerAuthorizedEventRoutes(mux, handler, verifier)
	registerAuthorizedProfileRoutes(mux, handler, verifier)
}

func registerAuthorizedAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/sports", RequireAuth(verifier, http.HandlerFunc(handler.CreateSport)))
	mux.Handle("PUT /v1/sports/{sportID}/schema", RequireAuth(verifier, http.HandlerFunc(handler.RegisterSportSchema)))
	mux.Handle("POST /v1/venues", RequireAuth(verifier, http.HandlerFunc(handler.CreateVenue)))
	mux.Handle("PUT /v1/venues/{venueID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateVenue)))
}

func registerAuthorizedEventRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/events", RequireAuth(verifier, http.HandlerFunc(handler.CreateEvent)))
	mux.Handle("PUT /v1/events/{eventID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateEvent)))
	mux.Handle("PUT /v1/events/{eventID}/status", RequireAuth(verifier, http.HandlerFunc(handler.TransitionEventStatus)))
	mux.Handle("DELETE /v1/events/{eventID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteEvent)))

	mux.Handle("POST /v1/events/{eventID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.AddTeam)))
	mux.Handle("PUT /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTeam)))

	mux.Handle("POST /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.AddPlayer)))
	mux.Handle("PUT /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))

	mux.Handle("POST /v1/events/{eventID}/fixtures", RequireAuth(verifier, http.HandlerFunc(handler.ScheduleFixture)))
	mux.Handle("PUT /v1/fixtures/{fixtureID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateFixture)))
	mux.Handle("PUT /v1/fixtures/{fixtureID}/score", RequireAuth(verifier, http.HandlerFunc(handler.RecordFixtureScore)))
	mux.Handle("DELETE /v1/fixtures/{fixtureID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteFixture)))

	mux.Handle("GET /v1/manager/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetManagerDashboard)))
}

func registerAuthorizedProfileRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyProfile)))
	mux.Handle("PUT /v1/me", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMyProfile)))
	mux.Handle("GET /v1/me/saved-events", RequireAuth(verifier, http.HandlerFunc(handler.ListMySavedEvents)))
	mux.Handle("POST /v1/events/{eventID}/save", RequireAuth(verifier, http.HandlerFunc(handler.SaveEvent)))
	mux.Handle("DELETE /v1/events/{eventID}/save", RequireAuth(verifier, http.HandlerFunc(handler.UnsaveEvent)))
}
