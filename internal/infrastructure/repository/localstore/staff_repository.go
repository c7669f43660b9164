package localstore

import (
	"context"
	"sync"

	"github.com/ligasmart/ligasmart/internal/domain/coach"
	"github.com/ligasmart/ligasmart/internal/domain/referee"
)

type RefereeRepository struct {
	mu    sync.Mutex
	store *Store
}

func NewRefereeRepository(store *Store) *RefereeRepository {
	return &RefereeRepository{store: store}
}

func (r *RefereeRepository) List(_ context.Context) ([]referee.Referee, error) {
	var recs []refereeRecord
	if _, err := r.store.Load(keyReferees, &recs); err != nil {
		return nil, err
	}

	out := make([]referee.Referee, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *RefereeRepository) GetByID(ctx context.Context, id string) (referee.Referee, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return referee.Referee{}, false, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return referee.Referee{}, false, nil
}

func (r *RefereeRepository) Save(_ context.Context, item referee.Referee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []refereeRecord
	if _, err := r.store.Load(keyReferees, &recs); err != nil {
		return err
	}

	updated := false
	for idx := range recs {
		if recs[idx].ID == item.ID {
			recs[idx] = toRefereeRecord(item)
			updated = true
			break
		}
	}
	if !updated {
		recs = append(recs, toRefereeRecord(item))
	}

	return r.store.Save(keyReferees, recs)
}

func (r *RefereeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []refereeRecord
	if _, err := r.store.Load(keyReferees, &recs); err != nil {
		return err
	}

	out := recs[:0]
	for _, rec := range recs {
		if rec.ID != id {
			out = append(out, rec)
		}
	}

	return r.store.Save(keyReferees, out)
}

type CoachRepository struct {
	mu    sync.Mutex
	store *Store
}

func NewCoachRepository(store *Store) *CoachRepository {
	return &CoachRepository{store: store}
}

func (r *CoachRepository) List(_ context.Context) ([]coach.Coach, error) {
	var recs []coachRecord
	if _, err := r.store.Load(keyCoaches, &recs); err != nil {
		return nil, err
	}

	out := make([]coach.Coach, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *CoachRepository) GetByID(ctx context.Context, id string) (coach.Coach, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return coach.Coach{}, false, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return coach.Coach{}, false, nil
}

func (r *CoachRepository) Save(_ context.Context, item coach.Coach) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []coachRecord
	if _, err := r.store.Load(keyCoaches, &recs); err != nil {
		return err
	}

	updated := false
	for idx := range recs {
		if recs[idx].ID == item.ID {
			recs[idx] = toCoachRecord(item)
			updated = true
			break
		}
	}
	if !updated {
		recs = append(recs, toCoachRecord(item))
	}

	return r.store.Save(keyCoaches, recs)
}

func (r *CoachRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []coachRecord
	if _, err := r.store.Load(keyCoaches, &recs); err != nil {
		return err
	}

	out := recs[:0]
	for _, rec := range recs {
		if rec.ID != id {
			out = append(out, rec)
		}
	}

	return r.store.Save(keyCoaches, out)
}
