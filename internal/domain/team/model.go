package team

import (
	"fmt"
	"strings"
)

// Team belongs to exactly one event. CaptainID holds a player id by
// convention, not by foreign key; it may point at a player that was later
// removed.
type Team struct {
	ID        string
	EventID   string
	Name      string
	City      string
	CoachName string
	CaptainID *string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.EventID == "" {
		return fmt.Errorf("team event id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
