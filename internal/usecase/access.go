package usecase

import (
	"fmt"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/domain/user"
)

// authorizeEventMutation decides whether the caller may mutate an event or
// anything it owns (teams, players, fixtures). It is a pure function of the
// principal and the resource: the event's manager or an admin, nobody else.
func authorizeEventMutation(principal user.Principal, item event.Event) error {
	if principal.UserID == "" {
		return fmt.Errorf("%w: caller identity is required", ErrUnauthenticated)
	}
	if principal.IsAdmin() {
		return nil
	}
	if principal.UserID == item.ManagerID {
		return nil
	}

	return fmt.Errorf("%w: user %s does not manage event %s", ErrForbidden, principal.UserID, item.ID)
}

// requireAdmin guards reference-data mutations (sports, venues, schemas).
func requireAdmin(principal user.Principal) error {
	if principal.UserID == "" {
		return fmt.Errorf("%w: caller identity is required", ErrUnauthenticated)
	}
	if !principal.IsAdmin() {
		return fmt.Errorf("%w: admin role required", ErrForbidden)
	}

	return nil
}

// requireManager guards event creation; admins pass as well.
func requireManager(principal user.Principal) error {
	if principal.UserID == "" {
		return fmt.Errorf("%w: caller identity is required", ErrUnauthenticated)
	}
	if principal.Role != user.RoleManager && !principal.IsAdmin() {
		return fmt.Errorf("%w: manager role required", ErrForbidden)
	}

	return nil
}
