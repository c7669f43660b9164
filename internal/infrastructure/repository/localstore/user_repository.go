package localstore

import (
	"context"
	"strings"
	"sync"

	"github.com/ligasmart/ligasmart/internal/domain/user"
)

type UserRepository struct {
	mu    sync.Mutex
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	var recs []userRecord
	if _, err := r.store.Load(keyUsers, &recs); err != nil {
		return nil, err
	}

	out := make([]user.User, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return user.User{}, false, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return user.User{}, false, err
	}
	for _, item := range items {
		if strings.EqualFold(item.Email, email) {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) Save(_ context.Context, item user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var recs []userRecord
	if _, err := r.store.Load(keyUsers, &recs); err != nil {
		return err
	}

	updated := false
	for idx := range recs {
		if recs[idx].ID == item.ID {
			recs[idx] = toUserRecord(item)
			updated = true
			break
		}
	}
	if !updated {
		recs = append(recs, toUserRecord(item))
	}

	return r.store.Save(keyUsers, recs)
}

// SessionStore persists the single current session under its own key.
type SessionStore struct {
	store *Store
}

func NewSessionStore(store *Store) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) Get(_ context.Context) (user.Session, bool, error) {
	var rec sessionRecord
	ok, err := s.store.Load(keySession, &rec)
	if err != nil || !ok {
		return user.Session{}, false, err
	}
	if rec.UserID == "" {
		return user.Session{}, false, nil
	}
	return rec.toDomain(), true, nil
}

func (s *SessionStore) Set(_ context.Context, session user.Session) error {
	return s.store.Save(keySession, toSessionRecord(session))
}

func (s *SessionStore) Clear(_ context.Context) error {
	return s.store.Drop(keySession)
}
