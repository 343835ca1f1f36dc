package player

import "context"

type Repository interface {
	Create(ctx context.Context, item Player) error
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	CountByTeams(ctx context.Context, teamIDs []string) (int, error)
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, playerID string) error
}
