package standing

import "context"

// Repository caches computed tables per tournament.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Standing, error)
	ReplaceByTournament(ctx context.Context, tournamentID string, standings []Standing) error
}
