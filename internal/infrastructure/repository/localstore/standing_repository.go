package localstore

import (
	"context"
	"sync"

	"github.com/ligasmart/ligasmart/internal/domain/standing"
)

// StandingRepository caches computed tables keyed by tournament id, all
// under one collection key the way the source app stored them.
type StandingRepository struct {
	mu    sync.Mutex
	store *Store
}

func NewStandingRepository(store *Store) *StandingRepository {
	return &StandingRepository{store: store}
}

func (r *StandingRepository) ListByTournament(_ context.Context, tournamentID string) ([]standing.Standing, error) {
	tables := make(map[string][]standingRecord)
	if _, err := r.store.Load(keyStandings, &tables); err != nil {
		return nil, err
	}

	recs := tables[tournamentID]
	out := make([]standing.Standing, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain(tournamentID))
	}
	return out, nil
}

func (r *StandingRepository) ReplaceByTournament(_ context.Context, tournamentID string, standings []standing.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tables := make(map[string][]standingRecord)
	if _, err := r.store.Load(keyStandings, &tables); err != nil {
		return err
	}

	recs := make([]standingRecord, 0, len(standings))
	for _, item := range standings {
		recs = append(recs, toStandingRecord(item))
	}
	tables[tournamentID] = recs

	return r.store.Save(keyStandings, tables)
}
