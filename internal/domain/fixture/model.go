package fixture

import (
	"fmt"
	"strings"
	"time"
)

// Fixture is one scheduled match or session inside an event.
//
// For team sports TeamAID and TeamBID reference two distinct teams of the
// same event. For individual sports both are nil and Title labels the
// session ("Men's 85kg Group A"). ScoreData is a free-form results document
// whose shape follows the sport; the core stores it opaquely.
type Fixture struct {
	ID        string
	EventID   string
	VenueID   *string
	StartTime time.Time
	TeamAID   *string
	TeamBID   *string
	Title     string
	ScoreData map[string]any
}

// TeamMatch reports whether the fixture carries the team-vs-team structure.
func (f Fixture) TeamMatch() bool {
	return f.TeamAID != nil && f.TeamBID != nil
}

func (f Fixture) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fixture id is required")
	}
	if f.EventID == "" {
		return fmt.Errorf("fixture event id is required")
	}
	if f.StartTime.IsZero() {
		return fmt.Errorf("fixture start time is required")
	}
	if (f.TeamAID == nil) != (f.TeamBID == nil) {
		return fmt.Errorf("fixture team references must be both present or both absent")
	}
	if f.TeamAID != nil && *f.TeamAID == *f.TeamBID {
		return fmt.Errorf("fixture team references must be distinct")
	}
	if f.TeamAID == nil && strings.TrimSpace(f.Title) == "" {
		return fmt.Errorf("fixture title is required for individual sessions")
	}

	return nil
}
