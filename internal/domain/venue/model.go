package venue

import (
	"fmt"
	"strings"
)

// Venue is reference data shared by events and fixtures.
type Venue struct {
	ID      string
	Name    string
	City    string
	Address string
}

func (v Venue) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("venue id is required")
	}
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("venue name is required")
	}
	if strings.TrimSpace(v.City) == "" {
		return fmt.Errorf("venue city is required")
	}

	return nil
}
