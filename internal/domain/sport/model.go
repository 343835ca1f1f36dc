package sport

import (
	"fmt"
	"strings"
)

const (
	TypeTeam       = "team"
	TypeIndividual = "individual"
)

// Sport is reference data: a discipline plus the declarative schema that
// governs the dynamic documents of its players.
type Sport struct {
	ID           string
	Name         string
	Type         string
	ConfigSchema ConfigSchema
}

// ConfigSchema declares the legal dynamic fields for one sport. Roles and
// StatFields are the governed key set; Extra carries sport-specific keys
// (weight categories, scoring units) that the core round-trips untouched.
type ConfigSchema struct {
	Roles      []string
	StatFields []string
	Extra      map[string]any
}

// AllowedKeys returns the union of roles and stat fields, the set a player
// details document may use under strict binding.
func (s ConfigSchema) AllowedKeys() map[string]struct{} {
	keys := make(map[string]struct{}, len(s.Roles)+len(s.StatFields))
	for _, role := range s.Roles {
		keys[role] = struct{}{}
	}
	for _, field := range s.StatFields {
		keys[field] = struct{}{}
	}
	return keys
}

func (s ConfigSchema) IsStatField(key string) bool {
	for _, field := range s.StatFields {
		if field == key {
			return true
		}
	}
	return false
}

func ValidType(sportType string) bool {
	switch sportType {
	case TypeTeam, TypeIndividual:
		return true
	default:
		return false
	}
}

func (s Sport) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("sport id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("sport name is required")
	}
	if !ValidType(s.Type) {
		return fmt.Errorf("sport type %q is not one of team, individual", s.Type)
	}

	return nil
}
