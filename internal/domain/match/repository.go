package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	Save(ctx context.Context, item Match) error
	Delete(ctx context.Context, id string) error
}

// EventRepository is append-only: events are never updated or removed once
// recorded. ListByMatch returns events ordered by minute ascending.
type EventRepository interface {
	ListAll(ctx context.Context) ([]Event, error)
	ListByMatch(ctx context.Context, matchID string) ([]Event, error)
	Append(ctx context.Context, item Event) error
}
