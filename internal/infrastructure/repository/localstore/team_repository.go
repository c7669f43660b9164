package localstore

import (
	"context"
	"sync"

	"github.com/ligasmart/ligasmart/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.Mutex
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	var recs []teamRecord
	if _, err := r.store.Load(keyTeams, &recs); err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return team.Team{}, false, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) Save(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []teamRecord
	if _, err := r.store.Load(keyTeams, &recs); err != nil {
		return err
	}

	updated := false
	for idx := range recs {
		if recs[idx].ID == item.ID {
			recs[idx] = toTeamRecord(item)
			updated = true
			break
		}
	}
	if !updated {
		recs = append(recs, toTeamRecord(item))
	}

	return r.store.Save(keyTeams, recs)
}

func (r *TeamRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []teamRecord
	if _, err := r.store.Load(keyTeams, &recs); err != nil {
		return err
	}

	out := recs[:0]
	for _, rec := range recs {
		if rec.ID != id {
			out = append(out, rec)
		}
	}

	return r.store.Save(keyTeams, out)
}
