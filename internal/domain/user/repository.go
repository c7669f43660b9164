package user

import "context"

// Repository describes user persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	Save(ctx context.Context, item User) error
}

// SessionStore holds the one current session. It is passed to use cases
// as an explicit dependency, never reached as ambient global state.
type SessionStore interface {
	Get(ctx context.Context) (Session, bool, error)
	Set(ctx context.Context, session Session) error
	Clear(ctx context.Context) error
}
