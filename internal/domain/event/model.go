package event

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

// Event is a tournament owned by exactly one manager and played under
// exactly one sport. RulesConfig is a free-form per-event settings document
// the core treats as opaque.
type Event struct {
	ID          string
	SportID     string
	ManagerID   string
	Title       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Status      string
	VenueID     *string
	RulesConfig map[string]any
}

// Filter narrows event listings. All set fields compose with AND.
// StartBefore is an inclusive upper bound on the event start date.
type Filter struct {
	SportID     string
	VenueID     string
	Status      string
	ManagerID   string
	Search      string
	StartBefore *time.Time
}

func ValidStatus(status string) bool {
	switch status {
	case StatusUpcoming, StatusLive, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransition reports whether status may move from current to next.
// Transitions only run forward; skipping live is allowed, going back is not.
func CanTransition(current, next string) bool {
	if !ValidStatus(current) || !ValidStatus(next) {
		return false
	}
	return statusRank(next) > statusRank(current)
}

func statusRank(status string) int {
	switch status {
	case StatusUpcoming:
		return 0
	case StatusLive:
		return 1
	case StatusCompleted:
		return 2
	default:
		return -1
	}
}

func (e Event) Completed() bool {
	return e.Status == StatusCompleted
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.SportID == "" {
		return fmt.Errorf("event sport id is required")
	}
	if e.ManagerID == "" {
		return fmt.Errorf("event manager id is required")
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event title is required")
	}
	if e.StartDate.IsZero() {
		return fmt.Errorf("event start date is required")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return fmt.Errorf("event end date precedes start date")
	}
	if !ValidStatus(e.Status) {
		return fmt.Errorf("event status %q is not one of upcoming, live, completed", e.Status)
	}

	return nil
}
