package postgres

import (
	"time"

	"github.com/playfield/tournament-service/internal/domain/user"
)

type userTableModel struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Avatar       string    `db:"avatar"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func userRowFromDomain(item user.User, now time.Time) userTableModel {
	return userTableModel{
		ID:           item.ID,
		Username:     item.Username,
		Email:        user.NormalizeEmail(item.Email),
		PasswordHash: item.PasswordHash,
		Role:         item.Role,
		Avatar:       item.Avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		Avatar:       row.Avatar,
	}
}
