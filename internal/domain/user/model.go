package user

import (
	"fmt"
	"strings"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RolePublic  = "public"
)

const DefaultAvatar = "default.png"

// User is a registered account. PasswordHash is a bcrypt hash; plaintext
// passwords never reach the model.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Avatar       string
}

// Principal is the authenticated identity attached to a request. Every
// mutating operation takes it explicitly; there is no ambient current user.
type Principal struct {
	UserID string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// NormalizeEmail lowercases and trims an email so uniqueness checks are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RolePublic:
		return true
	default:
		return false
	}
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if NormalizeEmail(u.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	if !ValidRole(u.Role) {
		return fmt.Errorf("role %q is not one of admin, manager, public", u.Role)
	}

	return nil
}
