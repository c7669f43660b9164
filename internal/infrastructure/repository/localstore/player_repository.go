package localstore

import (
	"context"
	"sync"

	"github.com/ligasmart/ligasmart/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.Mutex
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	var recs []playerRecord
	if _, err := r.store.Load(keyPlayers, &recs); err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return player.Player{}, false, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) Save(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []playerRecord
	if _, err := r.store.Load(keyPlayers, &recs); err != nil {
		return err
	}

	updated := false
	for idx := range recs {
		if recs[idx].ID == item.ID {
			recs[idx] = toPlayerRecord(item)
			updated = true
			break
		}
	}
	if !updated {
		recs = append(recs, toPlayerRecord(item))
	}

	return r.store.Save(keyPlayers, recs)
}

func (r *PlayerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []playerRecord
	if _, err := r.store.Load(keyPlayers, &recs); err != nil {
		return err
	}

	out := recs[:0]
	for _, rec := range recs {
		if rec.ID != id {
			out = append(out, rec)
		}
	}

	return r.store.Save(keyPlayers, out)
}
