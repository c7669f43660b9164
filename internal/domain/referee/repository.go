package referee

import "context"

type Repository interface {
	List(ctx context.Context) ([]Referee, error)
	GetByID(ctx context.Context, id string) (Referee, bool, error)
	Save(ctx context.Context, item Referee) error
	Delete(ctx context.Context, id string) error
}
