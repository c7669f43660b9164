package coach

import "context"

type Repository interface {
	List(ctx context.Context) ([]Coach, error)
	GetByID(ctx context.Context, id string) (Coach, bool, error)
	Save(ctx context.Context, item Coach) error
	Delete(ctx context.Context, id string) error
}
