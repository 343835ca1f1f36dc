package memory

import (
	"time"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/fixture"
	"github.com/playfield/tournament-service/internal/domain/player"
	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/domain/team"
	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/domain/venue"
)

// Fixed identifiers for seeded reference data, stable across restarts so
// local clients can hardcode them.
const (
	SeedSportCricketID       = "6b1f6c1e-6f3a-4f85-9a57-0d2e5c6a0001"
	SeedSportFootballID      = "6b1f6c1e-6f3a-4f85-9a57-0d2e5c6a0002"
	SeedSportKabaddiID       = "6b1f6c1e-6f3a-4f85-9a57-0d2e5c6a0003"
	SeedSportWeightliftingID = "6b1f6c1e-6f3a-4f85-9a57-0d2e5c6a0004"

	SeedVenueArenaID   = "0c9d2b7a-41de-4d30-8f6e-3b7a9c5d0001"
	SeedVenueStadiumID = "0c9d2b7a-41de-4d30-8f6e-3b7a9c5d0002"

	SeedAdminID   = "f2a8d4e0-95bc-47c1-8a10-7e4f1b2c0001"
	SeedManagerID = "f2a8d4e0-95bc-47c1-8a10-7e4f1b2c0002"

	SeedEventID = "3e5a7c90-12fb-4ad8-b6c4-9d0e8f7a0001"
	SeedTeamAID = "8d4b6e21-73ca-49f0-a5d8-1c2e3f4b0001"
	SeedTeamBID = "8d4b6e21-73ca-49f0-a5d8-1c2e3f4b0002"
)

// Seed loads demo data for local development. The hash function turns the
// demo passwords into stored hashes; pass the production hasher's Hash.
func Seed(store *Store, hash func(plaintext string) (string, error)) error {
	adminHash, err := hash("admin-password")
	if err != nil {
		return err
	}
	managerHash, err := hash("manager-password")
	if err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	for _, item := range seedSports() {
		store.sports[item.ID] = item
	}
	for _, item := range seedVenues() {
		store.venues[item.ID] = item
	}

	store.users[SeedAdminID] = user.User{
		ID:           SeedAdminID,
		Username:     "admin",
		Email:        "admin@playfield.local",
		PasswordHash: adminHash,
		Role:         user.RoleAdmin,
		Avatar:       user.DefaultAvatar,
	}
	store.users[SeedManagerID] = user.User{
		ID:           SeedManagerID,
		Username:     "citymanager",
		Email:        "manager@playfield.local",
		PasswordHash: managerHash,
		Role:         user.RoleManager,
		Avatar:       user.DefaultAvatar,
	}

	seedDemoEvent(store)

	return nil
}

func seedSports() []sport.Sport {
	return []sport.Sport{
		{
			ID:   SeedSportCricketID,
			Name: "Cricket",
			Type: sport.TypeTeam,
			ConfigSchema: sport.ConfigSchema{
				Roles:      []string{"batsman", "bowler", "all_rounder", "wicket_keeper"},
				StatFields: []string{"runs", "wickets", "catches", "overs"},
			},
		},
		{
			ID:   SeedSportFootballID,
			Name: "Football",
			Type: sport.TypeTeam,
			ConfigSchema: sport.ConfigSchema{
				Roles:      []string{"goalkeeper", "defender", "midfielder", "forward"},
				StatFields: []string{"goals", "assists", "saves", "yellow_cards"},
			},
		},
		{
			ID:   SeedSportKabaddiID,
			Name: "Kabaddi",
			Type: sport.TypeTeam,
			ConfigSchema: sport.ConfigSchema{
				Roles:      []string{"raider", "defender", "all_rounder"},
				StatFields: []string{"raid_points", "tackle_points"},
			},
		},
		{
			ID:   SeedSportWeightliftingID,
			Name: "Weightlifting",
			Type: sport.TypeIndividual,
			ConfigSchema: sport.ConfigSchema{
				Roles:      []string{"lifter"},
				StatFields: []string{"snatch", "clean_and_jerk", "total"},
				Extra: map[string]any{
					"weight_categories": []any{"61kg", "73kg", "85kg", "96kg"},
				},
			},
		},
	}
}

func seedVenues() []venue.Venue {
	return []venue.Venue{
		{
			ID:      SeedVenueArenaID,
			Name:    "Riverside Arena",
			City:    "Pune",
			Address: "12 Riverside Road",
		},
		{
			ID:      SeedVenueStadiumID,
			Name:    "Central Stadium",
			City:    "Mumbai",
			Address: "1 Stadium Circle",
		},
	}
}

func seedDemoEvent(store *Store) {
	venueID := SeedVenueArenaID
	start := time.Now().AddDate(0, 0, 14).Truncate(24 * time.Hour)

	store.events[SeedEventID] = event.Event{
		ID:          SeedEventID,
		SportID:     SeedSportCricketID,
		ManagerID:   SeedManagerID,
		Title:       "Monsoon Cup",
		Description: "Season opener for the city cricket league.",
		StartDate:   start,
		Status:      event.StatusUpcoming,
		VenueID:     &venueID,
		RulesConfig: map[string]any{"overs_per_innings": int64(20)},
	}

	store.teams[SeedTeamAID] = team.Team{
		ID:        SeedTeamAID,
		EventID:   SeedEventID,
		Name:      "River Kings",
		City:      "Pune",
		CoachName: "S. Rao",
	}
	store.teams[SeedTeamBID] = team.Team{
		ID:        SeedTeamBID,
		EventID:   SeedEventID,
		Name:      "Harbour Hawks",
		City:      "Mumbai",
		CoachName: "M. Shaikh",
	}

	playerAID := "5f7e9a12-84bd-4c3f-9e01-2a6b8c4d0001"
	playerBID := "5f7e9a12-84bd-4c3f-9e01-2a6b8c4d0002"
	store.players[playerAID] = player.Player{
		ID:     playerAID,
		TeamID: SeedTeamAID,
		Name:   "A. Kulkarni",
		Details: map[string]any{
			"batsman": true,
			"runs":    int64(412),
		},
	}
	store.players[playerBID] = player.Player{
		ID:     playerBID,
		TeamID: SeedTeamBID,
		Name:   "R. Fernandes",
		Details: map[string]any{
			"bowler":  true,
			"wickets": int64(19),
		},
	}

	teamA, teamB := SeedTeamAID, SeedTeamBID
	fixtureID := "b1c3e5a7-9d2f-4b68-8e40-6f1a2c3d0001"
	store.fixtures[fixtureID] = fixture.Fixture{
		ID:        fixtureID,
		EventID:   SeedEventID,
		VenueID:   &venueID,
		StartTime: start.Add(10 * time.Hour),
		TeamAID:   &teamA,
		TeamBID:   &teamB,
		ScoreData: map[string]any{},
	}
}
