package plan

import "context"

type Repository interface {
	// List returns plans ordered by price ascending.
	List(ctx context.Context) ([]Plan, error)
	GetByID(ctx context.Context, id string) (*Plan, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, plan *Plan) error
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id string) (bool, error)
}
