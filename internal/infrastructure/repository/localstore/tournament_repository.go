package localstore

import (
	"context"
	"sync"

	"github.com/ligasmart/ligasmart/internal/domain/tournament"
)

type TournamentRepository struct {
	mu    sync.Mutex
	store *Store
}

func NewTournamentRepository(store *Store) *TournamentRepository {
	return &TournamentRepository{store: store}
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	var recs []tournamentRecord
	if _, err := r.store.Load(keyTournaments, &recs); err != nil {
		return nil, err
	}

	out := make([]tournament.Tournament, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id string) (tournament.Tournament, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return tournament.Tournament{}, false, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return tournament.Tournament{}, false, nil
}

func (r *TournamentRepository) Save(_ context.Context, item tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []tournamentRecord
	if _, err := r.store.Load(keyTournaments, &recs); err != nil {
		return err
	}

	updated := false
	for idx := range recs {
		if recs[idx].ID == item.ID {
			recs[idx] = toTournamentRecord(item)
			updated = true
			break
		}
	}
	if !updated {
		recs = append(recs, toTournamentRecord(item))
	}

	return r.store.Save(keyTournaments, recs)
}

func (r *TournamentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []tournamentRecord
	if _, err := r.store.Load(keyTournaments, &recs); err != nil {
		return err
	}

	out := recs[:0]
	for _, rec := range recs {
		if rec.ID != id {
			out = append(out, rec)
		}
	}

	return r.store.Save(keyTournaments, out)
}
