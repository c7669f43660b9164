package localstore

import (
	"context"
	"sort"
	"sync"

	"github.com/ligasmart/ligasmart/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.Mutex
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	var recs []matchRecord
	if _, err := r.store.Load(keyMatches, &recs); err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return match.Match{}, false, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *MatchRepository) Save(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []matchRecord
	if _, err := r.store.Load(keyMatches, &recs); err != nil {
		return err
	}

	updated := false
	for idx := range recs {
		if recs[idx].ID == item.ID {
			recs[idx] = toMatchRecord(item)
			updated = true
			break
		}
	}
	if !updated {
		recs = append(recs, toMatchRecord(item))
	}

	return r.store.Save(keyMatches, recs)
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []matchRecord
	if _, err := r.store.Load(keyMatches, &recs); err != nil {
		return err
	}

	out := recs[:0]
	for _, rec := range recs {
		if rec.ID != id {
			out = append(out, rec)
		}
	}

	return r.store.Save(keyMatches, out)
}

// EventRepository is append-only over the events collection.
type EventRepository struct {
	mu    sync.Mutex
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) ListAll(_ context.Context) ([]match.Event, error) {
	var recs []eventRecord
	if _, err := r.store.Load(keyEvents, &recs); err != nil {
		return nil, err
	}

	out := make([]match.Event, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *EventRepository) ListByMatch(ctx context.Context, matchID string) ([]match.Event, error) {
	items, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]match.Event, 0, len(items))
	for _, item := range items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Minute < out[j].Minute })

	return out, nil
}

func (r *EventRepository) Append(_ context.Context, item match.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []eventRecord
	if _, err := r.store.Load(keyEvents, &recs); err != nil {
		return err
	}
	recs = append(recs, toEventRecord(item))

	return r.store.Save(keyEvents, recs)
}
