package player

import (
	"fmt"
	"strings"
)

// Player belongs to exactly one team. Details is the dynamic per-sport
// document; its keys are governed by the owning event's sport schema through
// the binding layer before it ever reaches a repository.
type Player struct {
	ID      string
	TeamID  string
	Name    string
	Details map[string]any
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
