package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Team, error)
	GetByID(ctx context.Context, id string) (Team, bool, error)
	Save(ctx context.Context, item Team) error
	Delete(ctx context.Context, id string) error
}
