package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	Save(ctx context.Context, item Player) error
	Delete(ctx context.Context, id string) error
}
