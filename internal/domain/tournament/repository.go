package tournament

import "context"

// Repository describes tournament persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	GetByID(ctx context.Context, id string) (Tournament, bool, error)
	Save(ctx context.Context, item Tournament) error
	Delete(ctx context.Context, id string) error
}
